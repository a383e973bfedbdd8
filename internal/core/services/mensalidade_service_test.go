package services

import (
	"context"
	"testing"
	"time"

	"apoio-gestao/internal/adapters/persistence/models"
	"apoio-gestao/internal/adapters/persistence/repositories"
	"apoio-gestao/internal/core/domain"
	"apoio-gestao/internal/pkg/pix"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ============================================================
// In-memory fakes
// ============================================================

type fakeAssociadoRepo struct {
	associados map[string]*domain.Associado
}

func newFakeAssociadoRepo() *fakeAssociadoRepo {
	return &fakeAssociadoRepo{associados: make(map[string]*domain.Associado)}
}

func (r *fakeAssociadoRepo) add(nome string, ativo bool) *domain.Associado {
	a := &domain.Associado{
		ID:    uuid.New(),
		Nome:  nome,
		Email: nome + "@example.com",
		Ativo: ativo,
	}
	r.associados[a.ID.String()] = a
	return a
}

func (r *fakeAssociadoRepo) Create(ctx context.Context, associado *models.Associado) error {
	return nil
}

func (r *fakeAssociadoRepo) GetByID(ctx context.Context, id string) (*models.Associado, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAssociadoRepo) FindByID(ctx context.Context, id string) (*domain.Associado, error) {
	a, ok := r.associados[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAssociadoRepo) ListAtivos(ctx context.Context) ([]*domain.Associado, error) {
	var ativos []*domain.Associado
	for _, a := range r.associados {
		if a.Ativo {
			ativos = append(ativos, a)
		}
	}
	return ativos, nil
}

func (r *fakeAssociadoRepo) List(ctx context.Context, offset, limit int) ([]*models.Associado, int64, error) {
	return nil, 0, nil
}

func (r *fakeAssociadoRepo) Update(ctx context.Context, associado *models.Associado) error {
	return nil
}

func (r *fakeAssociadoRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *fakeAssociadoRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type periodoKey struct {
	associadoID string
	mes, ano    int
}

type fakeMensalidadeRepo struct {
	byID      map[string]*domain.Mensalidade
	byPeriodo map[periodoKey]string

	// when set, Create fails with this error once
	nextCreateErr error

	// when set, runs after FindPendentesVencidas has taken its snapshot,
	// simulating a writer that lands between the fetch and the update
	afterFindPendentes func()
}

func newFakeMensalidadeRepo() *fakeMensalidadeRepo {
	return &fakeMensalidadeRepo{
		byID:      make(map[string]*domain.Mensalidade),
		byPeriodo: make(map[periodoKey]string),
	}
}

func (r *fakeMensalidadeRepo) Create(ctx context.Context, m *domain.Mensalidade) error {
	if r.nextCreateErr != nil {
		err := r.nextCreateErr
		r.nextCreateErr = nil
		return err
	}

	key := periodoKey{m.AssociadoID.String(), m.MesReferencia, m.AnoReferencia}
	if _, ok := r.byPeriodo[key]; ok {
		return gorm.ErrDuplicatedKey
	}

	cp := *m
	r.byID[m.ID.String()] = &cp
	r.byPeriodo[key] = m.ID.String()
	return nil
}

func (r *fakeMensalidadeRepo) GetByID(ctx context.Context, id string) (*domain.Mensalidade, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMensalidadeRepo) ExistsForPeriodo(ctx context.Context, associadoID string, mes, ano int) (bool, error) {
	_, ok := r.byPeriodo[periodoKey{associadoID, mes, ano}]
	return ok, nil
}

func (r *fakeMensalidadeRepo) FindPendentesVencidas(ctx context.Context, ref time.Time) ([]*domain.Mensalidade, error) {
	var out []*domain.Mensalidade
	for _, m := range r.byID {
		if m.Status == domain.StatusPendente && ref.After(m.DataVencimento) {
			cp := *m
			out = append(out, &cp)
		}
	}
	if r.afterFindPendentes != nil {
		r.afterFindPendentes()
	}
	return out, nil
}

func (r *fakeMensalidadeRepo) MarcarAtrasada(ctx context.Context, id string) (bool, error) {
	m, ok := r.byID[id]
	if !ok || m.Status != domain.StatusPendente {
		return false, nil
	}
	m.Status = domain.StatusAtrasada
	return true, nil
}

func (r *fakeMensalidadeRepo) Update(ctx context.Context, m *domain.Mensalidade) error {
	if _, ok := r.byID[m.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *m
	r.byID[m.ID.String()] = &cp
	return nil
}

func (r *fakeMensalidadeRepo) List(ctx context.Context, filtro *repositories.MensalidadeFiltro, offset, limit int) ([]*models.Mensalidade, int64, error) {
	return nil, 0, nil
}

func newTestService(associadoRepo *fakeAssociadoRepo, mensalidadeRepo *fakeMensalidadeRepo) *MensalidadeService {
	gen := pix.NewGenerator("contato@apoio.org.br", "Associacao Apoio", "Sao Paulo")
	return NewMensalidadeService(mensalidadeRepo, associadoRepo, gen, decimal.RequireFromString("10.90"))
}

// ============================================================
// Generation
// ============================================================

func TestGerarParaPeriodo_PrimeiraExecucao(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()

	a1 := associadoRepo.add("Maria", true)
	a2 := associadoRepo.add("Joao", true)
	associadoRepo.add("Inativo", false)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	resultado, err := svc.GerarParaPeriodo(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Geradas)
	assert.Equal(t, 0, resultado.JaExistiam)
	assert.Equal(t, 2, resultado.TotalElegiveis)

	for _, a := range []*domain.Associado{a1, a2} {
		exists, err := mensalidadeRepo.ExistsForPeriodo(context.Background(), a.ID.String(), 3, 2024)
		require.NoError(t, err)
		assert.True(t, exists, "mensalidade missing for %s", a.Nome)
	}

	// Inactive associado gets nothing
	assert.Len(t, mensalidadeRepo.byID, 2)
}

func TestGerarParaPeriodo_Reexecucao(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	associadoRepo.add("Maria", true)
	associadoRepo.add("Joao", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	_, err := svc.GerarParaPeriodo(context.Background(), 3, 2024)
	require.NoError(t, err)

	// New associado joins between runs
	associadoRepo.add("Ana", true)

	resultado, err := svc.GerarParaPeriodo(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Geradas, "only the new associado gets a record")
	assert.Equal(t, 2, resultado.JaExistiam)
	assert.Equal(t, 3, resultado.TotalElegiveis)
	assert.Len(t, mensalidadeRepo.byID, 3)
}

func TestGerarParaPeriodo_PeriodoInvalido(t *testing.T) {
	svc := newTestService(newFakeAssociadoRepo(), newFakeMensalidadeRepo())

	for _, periodo := range []struct{ mes, ano int }{{0, 2024}, {13, 2024}, {3, 0}} {
		_, err := svc.GerarParaPeriodo(context.Background(), periodo.mes, periodo.ano)
		assert.ErrorIs(t, err, domain.ErrPeriodoInvalido)
	}
}

func TestGerarParaPeriodo_CamposDaMensalidade(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	_, err := svc.GerarParaPeriodo(context.Background(), 3, 2024)
	require.NoError(t, err)

	require.Len(t, mensalidadeRepo.byID, 1)
	var m *domain.Mensalidade
	for _, v := range mensalidadeRepo.byID {
		m = v
	}

	assert.Equal(t, a.ID, m.AssociadoID)
	assert.Equal(t, domain.StatusPendente, m.Status)
	assert.True(t, decimal.RequireFromString("10.90").Equal(m.Valor))
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), m.DataVencimento)
	assert.Equal(t, domain.PixTxID(a.ID, 3, 2024), m.PixTxID)
	assert.Contains(t, m.PixCopiaECola, m.PixTxID)
	assert.Contains(t, m.PixCopiaECola, "br.gov.bcb.pix")
	assert.Contains(t, m.PixCopiaECola, "540510.90")
}

func TestGerarParaPeriodo_CorridaDeDuplicados(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	associadoRepo.add("Maria", true)

	// Another writer wins between the existence check and the insert
	mensalidadeRepo.nextCreateErr = gorm.ErrDuplicatedKey

	svc := newTestService(associadoRepo, mensalidadeRepo)

	resultado, err := svc.GerarParaPeriodo(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, 0, resultado.Geradas)
	assert.Equal(t, 1, resultado.JaExistiam)
}

func TestGerarParaAssociado(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	m, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, a.ID, m.AssociadoID)

	// Same period again is a conflict, not a silent skip
	_, err = svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	assert.ErrorIs(t, err, domain.ErrMensalidadeJaExiste)
}

func TestGerarParaAssociado_Erros(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	inativo := associadoRepo.add("Inativo", false)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	_, err := svc.GerarParaAssociado(context.Background(), 3, 2024, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrAssociadoNaoEncontrado)

	_, err = svc.GerarParaAssociado(context.Background(), 3, 2024, inativo.ID.String())
	assert.ErrorIs(t, err, domain.ErrAssociadoInativo)

	_, err = svc.GerarParaAssociado(context.Background(), 13, 2024, inativo.ID.String())
	assert.ErrorIs(t, err, domain.ErrPeriodoInvalido)
}

// ============================================================
// Payment
// ============================================================

func TestRegistrarPagamento(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	criada, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)

	forma := domain.PagamentoPix
	paga, err := svc.RegistrarPagamento(context.Background(), criada.ID.String(), &forma)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPaga, paga.Status)
	require.NotNil(t, paga.DataPagamento)
	require.NotNil(t, paga.FormaPagamento)
	assert.Equal(t, domain.PagamentoPix, *paga.FormaPagamento)

	// Persisted too
	stored, err := mensalidadeRepo.GetByID(context.Background(), criada.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaga, stored.Status)
}

func TestRegistrarPagamento_Dobrado(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	criada, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)

	formaPix := domain.PagamentoPix
	primeira, err := svc.RegistrarPagamento(context.Background(), criada.ID.String(), &formaPix)
	require.NoError(t, err)

	// Second registration with DINHEIRO must fail and leave the record as is
	dinheiro := domain.PagamentoDinheiro
	_, err = svc.RegistrarPagamento(context.Background(), criada.ID.String(), &dinheiro)
	assert.ErrorIs(t, err, domain.ErrMensalidadeJaPaga)

	stored, err := mensalidadeRepo.GetByID(context.Background(), criada.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.PagamentoPix, *stored.FormaPagamento)
	assert.Equal(t, *primeira.DataPagamento, *stored.DataPagamento)
}

func TestRegistrarPagamento_NaoEncontrada(t *testing.T) {
	svc := newTestService(newFakeAssociadoRepo(), newFakeMensalidadeRepo())

	forma := domain.PagamentoPix
	_, err := svc.RegistrarPagamento(context.Background(), uuid.New().String(), &forma)
	assert.ErrorIs(t, err, domain.ErrMensalidadeNaoEncontrada)
}

// ============================================================
// Overdue sweep
// ============================================================

func TestReconciliarAtrasadas(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	criada, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)

	// Day before the due date: nothing changes
	count, err := svc.ReconciliarAtrasadas(context.Background(), time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Day after the due date: pending becomes overdue
	count, err = svc.ReconciliarAtrasadas(context.Background(), time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := mensalidadeRepo.GetByID(context.Background(), criada.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAtrasada, stored.Status)

	// Re-running is a no-op
	count, err = svc.ReconciliarAtrasadas(context.Background(), time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReconciliarAtrasadas_PagamentoConcorrente(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	criada, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)

	// A payment lands after the sweep picked its candidates but before the
	// status write. The conditional transition must leave the record PAGA.
	mensalidadeRepo.afterFindPendentes = func() {
		m := mensalidadeRepo.byID[criada.ID.String()]
		forma := domain.PagamentoPix
		quando := time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)
		require.NoError(t, m.RegistrarPagamento(quando, &forma))
	}

	count, err := svc.ReconciliarAtrasadas(context.Background(), time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	stored, err := mensalidadeRepo.GetByID(context.Background(), criada.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaga, stored.Status)
	require.NotNil(t, stored.DataPagamento, "payment timestamp must survive the sweep")
	require.NotNil(t, stored.FormaPagamento)
	assert.Equal(t, domain.PagamentoPix, *stored.FormaPagamento)
}

func TestReconciliarAtrasadas_IgnoraPagas(t *testing.T) {
	associadoRepo := newFakeAssociadoRepo()
	mensalidadeRepo := newFakeMensalidadeRepo()
	a := associadoRepo.add("Maria", true)

	svc := newTestService(associadoRepo, mensalidadeRepo)

	criada, err := svc.GerarParaAssociado(context.Background(), 3, 2024, a.ID.String())
	require.NoError(t, err)

	forma := domain.PagamentoDinheiro
	_, err = svc.RegistrarPagamento(context.Background(), criada.ID.String(), &forma)
	require.NoError(t, err)

	count, err := svc.ReconciliarAtrasadas(context.Background(), time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	stored, err := mensalidadeRepo.GetByID(context.Background(), criada.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaga, stored.Status)
}
