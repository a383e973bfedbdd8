package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	AppMode     string
	Port        string
	Database    DatabaseConfig
	JWT         JWTConfig
	Pix         PixConfig
	Mensalidade MensalidadeConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// PixConfig holds the receiver data embedded in PIX payloads
type PixConfig struct {
	Chave         string
	NomeRecebedor string
	Cidade        string
}

// MensalidadeConfig holds the monthly dues parameters
type MensalidadeConfig struct {
	Valor decimal.Decimal
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	mensalidade, err := loadMensalidadeConfig()
	if err != nil {
		return nil, err
	}

	// Build config based on APP_MODE
	config := &Config{
		AppMode:     appMode,
		Port:        getEnv("PORT", "3000"),
		Database:    loadDatabaseConfig(appMode),
		JWT:         loadJWTConfig(appMode),
		Pix:         loadPixConfig(),
		Mensalidade: mensalidade,
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "apoio_gestao"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadPixConfig loads the PIX receiver data
func loadPixConfig() PixConfig {
	return PixConfig{
		Chave:         getEnv("PIX_CHAVE", "contato@apoiogestao.org.br"),
		NomeRecebedor: getEnv("PIX_NOME_RECEBEDOR", "Associacao Apoio"),
		Cidade:        getEnv("PIX_CIDADE", "SAO PAULO"),
	}
}

// loadMensalidadeConfig loads the monthly dues value
func loadMensalidadeConfig() (MensalidadeConfig, error) {
	raw := getEnv("MENSALIDADE_VALOR", "10.90")
	valor, err := decimal.NewFromString(raw)
	if err != nil {
		return MensalidadeConfig{}, fmt.Errorf("invalid MENSALIDADE_VALOR: '%s'", raw)
	}
	if valor.LessThanOrEqual(decimal.Zero) {
		return MensalidadeConfig{}, fmt.Errorf("MENSALIDADE_VALOR must be positive, got '%s'", raw)
	}
	return MensalidadeConfig{Valor: valor}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://gestao.apoiogestao.org.br"
	}
	return origins
}
