package routes

import (
	"apoio-gestao/internal/adapters/http/handlers"
	"apoio-gestao/internal/adapters/http/middleware"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/config"
	"apoio-gestao/internal/core/services"
	"apoio-gestao/internal/pkg/pix"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	associadoRepo := repositories.NewAssociadoRepository(db)
	mensalidadeRepo := repositories.NewMensalidadeRepository(db)
	vendaRepo := repositories.NewVendaRepository(db)
	doacaoRepo := repositories.NewDoacaoRepository(db)

	// PIX payload generator
	pixGen := pix.NewGenerator(cfg.Pix.Chave, cfg.Pix.NomeRecebedor, cfg.Pix.Cidade)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	associadoService := services.NewAssociadoService(associadoRepo)
	mensalidadeService := services.NewMensalidadeService(
		mensalidadeRepo,
		associadoRepo,
		pixGen,
		cfg.Mensalidade.Valor,
	)
	vendaService := services.NewVendaService(vendaRepo)
	doacaoService := services.NewDoacaoService(doacaoRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	associadoHandler := handlers.NewAssociadoHandler(associadoService)
	mensalidadeHandler := handlers.NewMensalidadeHandler(mensalidadeService)
	vendaHandler := handlers.NewVendaHandler(vendaService)
	doacaoHandler := handlers.NewDoacaoHandler(doacaoService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, associadoHandler,
		mensalidadeHandler, vendaHandler, doacaoHandler, dashboardHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	associadoHandler *handlers.AssociadoHandler,
	mensalidadeHandler *handlers.MensalidadeHandler,
	vendaHandler *handlers.VendaHandler,
	doacaoHandler *handlers.DoacaoHandler,
	dashboardHandler *handlers.DashboardHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Associado routes (Authenticated)
	associadoRoutes := router.Group("/associados")
	associadoRoutes.Use(middleware.AuthMiddleware(cfg))
	setupAssociadoRoutes(associadoRoutes, associadoHandler, mensalidadeHandler)

	// Mensalidade routes (Authenticated)
	mensalidadeRoutes := router.Group("/mensalidades")
	mensalidadeRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMensalidadeRoutes(mensalidadeRoutes, mensalidadeHandler)

	// Venda routes (Authenticated)
	vendaRoutes := router.Group("/vendas")
	vendaRoutes.Use(middleware.AuthMiddleware(cfg))
	setupVendaRoutes(vendaRoutes, vendaHandler)

	// Doação routes (Authenticated)
	doacaoRoutes := router.Group("/doacoes")
	doacaoRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDoacaoRoutes(doacaoRoutes, doacaoHandler)

	// Dashboard routes (Authenticated)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.DashboardCache())
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (stricter rate limit against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupAssociadoRoutes configures associado routes
func setupAssociadoRoutes(router fiber.Router, handler *handlers.AssociadoHandler, mensalidadeHandler *handlers.MensalidadeHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)

	// Per-associado mensalidade generation
	router.Post("/:id/mensalidades", mensalidadeHandler.GerarParaAssociado)
}

// setupMensalidadeRoutes configures mensalidade routes
func setupMensalidadeRoutes(router fiber.Router, handler *handlers.MensalidadeHandler) {
	router.Post("/gerar", middleware.AdminOnly(), handler.Gerar)
	router.Post("/reconciliar", middleware.AdminOnly(), handler.Reconciliar)
	router.Get("/", handler.List)
	router.Get("/:id", handler.GetByID)
	router.Post("/:id/pagamento", handler.RegistrarPagamento)
}

// setupVendaRoutes configures venda routes
func setupVendaRoutes(router fiber.Router, handler *handlers.VendaHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Delete("/:id", handler.Delete)
}

// setupDoacaoRoutes configures doação routes
func setupDoacaoRoutes(router fiber.Router, handler *handlers.DoacaoHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Delete("/:id", handler.Delete)
}
