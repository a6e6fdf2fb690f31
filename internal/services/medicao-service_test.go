package services

import (
	"context"
	"testing"
	"time"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAcionamentoRepo struct {
	repositories.AcionamentoRepositoryInterface

	acionamento *entities.Acionamento
	avancouPara int
	extras      map[string]interface{}
}

func (f *fakeAcionamentoRepo) BuscarPorID(ctx context.Context, id string) (*entities.Acionamento, error) {
	if f.acionamento == nil {
		return nil, apperrors.ErrNotFound
	}
	return f.acionamento, nil
}

func (f *fakeAcionamentoRepo) AvancarEtapa(ctx context.Context, tx pgx.Tx, id string, novaEtapa int, extras map[string]interface{}) error {
	f.avancouPara = novaEtapa
	f.extras = extras
	return nil
}

type fakeEquipeRepo struct {
	vinculos []entities.AcionamentoEquipe
	cadastro map[string]entities.Equipe
}

func (f *fakeEquipeRepo) ListarAtivas(ctx context.Context) ([]entities.Equipe, error) {
	return nil, nil
}

func (f *fakeEquipeRepo) BuscarPorIDs(ctx context.Context, ids []string) (map[string]entities.Equipe, error) {
	return f.cadastro, nil
}

func (f *fakeEquipeRepo) ListarVinculos(ctx context.Context, idAcionamento string) ([]entities.AcionamentoEquipe, error) {
	return f.vinculos, nil
}

type fakeSessaoRepo struct {
	sessao *repositories.SessaoMedicao
}

func (f *fakeSessaoRepo) Abrir(ctx context.Context, idAcionamento string) (*repositories.SessaoMedicao, error) {
	f.sessao = &repositories.SessaoMedicao{AbertaEm: time.Now()}
	return f.sessao, nil
}

func (f *fakeSessaoRepo) Buscar(ctx context.Context, idAcionamento string) (*repositories.SessaoMedicao, error) {
	return f.sessao, nil
}

func (f *fakeSessaoRepo) MarcarOrcamento(ctx context.Context, idAcionamento, linha string) error {
	return nil
}

func (f *fakeSessaoRepo) MarcarPlanilha(ctx context.Context, idAcionamento, linha string) error {
	return nil
}

type fakeCacheRepo struct {
	invalidacoes int
}

func (f *fakeCacheRepo) BuscarContagens(ctx context.Context) ([]dto.ContagemEtapa, bool, error) {
	return nil, false, nil
}

func (f *fakeCacheRepo) GravarContagens(ctx context.Context, contagens []dto.ContagemEtapa) error {
	return nil
}

func (f *fakeCacheRepo) InvalidarContagens(ctx context.Context) error {
	f.invalidacoes++
	return nil
}

func acionamentoEmMedicao() *entities.Acionamento {
	return &entities.Acionamento{
		IDAcionamento: "a1",
		Modalidade:    "LM+LV",
		EtapaAtual:    3,
		EquipeLM:      null.StringFrom("E14"),
		EquipeLV:      null.StringFrom("E68"),
	}
}

func montarMedicaoService(a *entities.Acionamento, sessao *repositories.SessaoMedicao) (*MedicaoService, *fakeAcionamentoRepo, *fakeCacheRepo) {
	acionamentoRepo := &fakeAcionamentoRepo{acionamento: a}
	cacheRepo := &fakeCacheRepo{}
	resolver := NewEquipeResolverService(&fakeEquipeRepo{}, zap.NewNop())
	svc := NewMedicaoService(
		nil, nil, nil,
		&fakeSessaoRepo{sessao: sessao},
		acionamentoRepo,
		cacheRepo,
		resolver,
		zap.NewNop(),
	)
	return svc, acionamentoRepo, cacheRepo
}

func sessaoComArtefatos() *repositories.SessaoMedicao {
	return &repositories.SessaoMedicao{
		AbertaEm:    time.Now(),
		OrcamentoLM: true,
		PlanilhaLV:  true,
	}
}

func TestRegistrarMedicaoAvancaQuandoValido(t *testing.T) {
	svc, acionamentoRepo, cacheRepo := montarMedicaoService(acionamentoEmMedicao(), sessaoComArtefatos())

	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E14", EquipeLV: "E68"})

	require.NoError(t, err)
	assert.Equal(t, 4, acionamentoRepo.avancouPara)
	assert.Contains(t, acionamentoRepo.extras, "medicao_registrada_em")
	assert.Equal(t, 1, cacheRepo.invalidacoes)
}

func TestRegistrarMedicaoForaDaEtapa(t *testing.T) {
	a := acionamentoEmMedicao()
	a.EtapaAtual = 4
	svc, acionamentoRepo, _ := montarMedicaoService(a, sessaoComArtefatos())

	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E14", EquipeLV: "E68"})

	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 409, httpErr.Code)
	assert.Zero(t, acionamentoRepo.avancouPara)
}

func TestRegistrarMedicaoSemSessaoAberta(t *testing.T) {
	svc, acionamentoRepo, _ := montarMedicaoService(acionamentoEmMedicao(), nil)

	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E14", EquipeLV: "E68"})

	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 422, httpErr.Code)
	assert.Zero(t, acionamentoRepo.avancouPara)
}

func TestRegistrarMedicaoSemArtefatoDaModalidade(t *testing.T) {
	sessao := sessaoComArtefatos()
	sessao.PlanilhaLV = false
	svc, acionamentoRepo, _ := montarMedicaoService(acionamentoEmMedicao(), sessao)

	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E14", EquipeLV: "E68"})

	require.Error(t, err)
	assert.Zero(t, acionamentoRepo.avancouPara)
}

func TestRegistrarMedicaoEquipeDeOutraModalidade(t *testing.T) {
	svc, acionamentoRepo, _ := montarMedicaoService(acionamentoEmMedicao(), sessaoComArtefatos())

	// E68 é de linha viva; não serve para medir a linha morta
	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E68", EquipeLV: "E68"})

	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 422, httpErr.Code)
	assert.Zero(t, acionamentoRepo.avancouPara)
}

func TestRegistrarMedicaoModalidadeUnicaIgnoraOutraEquipe(t *testing.T) {
	a := acionamentoEmMedicao()
	a.Modalidade = "LM"
	a.EquipeLV = null.String{}
	svc, acionamentoRepo, _ := montarMedicaoService(a, sessaoComArtefatos())

	err := svc.RegistrarMedicao(context.Background(), "a1", dto.RegistrarMedicaoRequest{EquipeLM: "E14"})

	require.NoError(t, err)
	assert.Equal(t, 4, acionamentoRepo.avancouPara)
}
