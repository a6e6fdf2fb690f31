package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"acionamento-system/internal/catalog"
	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

// Sem configuração no banco, 1 UPS vale R$ 1. O valor real vem de
// system_settings e muda por aditivo contratual.
const valorUpsPadrao = 1.0

type MedicaoService struct {
	medicaoRepo     repositories.MedicaoRepositoryInterface
	codigoMORepo    repositories.CodigoMORepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	sessaoRepo      repositories.SessaoMedicaoRepositoryInterface
	acionamentoRepo repositories.AcionamentoRepositoryInterface
	cacheRepo       repositories.CacheRepositoryInterface
	resolver        *EquipeResolverService
	logger          *zap.Logger
}

func NewMedicaoService(
	medicaoRepo repositories.MedicaoRepositoryInterface,
	codigoMORepo repositories.CodigoMORepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	sessaoRepo repositories.SessaoMedicaoRepositoryInterface,
	acionamentoRepo repositories.AcionamentoRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	resolver *EquipeResolverService,
	logger *zap.Logger,
) *MedicaoService {
	return &MedicaoService{
		medicaoRepo:     medicaoRepo,
		codigoMORepo:    codigoMORepo,
		settingsRepo:    settingsRepo,
		sessaoRepo:      sessaoRepo,
		acionamentoRepo: acionamentoRepo,
		cacheRepo:       cacheRepo,
		resolver:        resolver,
		logger:          logger,
	}
}

// Buscar devolve o rascunho do acionamento; sem rascunho gravado,
// devolve um vazio com os valores de UPS vigentes.
func (s *MedicaoService) Buscar(ctx context.Context, idAcionamento string) (*entities.MedicaoOrcamento, error) {
	medicao, err := s.medicaoRepo.BuscarPorAcionamento(ctx, idAcionamento)
	if err == nil {
		return medicao, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	valorLM, err := s.settingsRepo.ValorFloat(ctx, repositories.ChaveValorUpsLM, valorUpsPadrao)
	if err != nil {
		return nil, err
	}
	valorLV, err := s.settingsRepo.ValorFloat(ctx, repositories.ChaveValorUpsLV, valorUpsPadrao)
	if err != nil {
		return nil, err
	}
	return &entities.MedicaoOrcamento{
		IDAcionamento: idAcionamento,
		ItensLM:       []entities.MedicaoItem{},
		ItensLV:       []entities.MedicaoItem{},
		ValorUpsLM:    valorLM,
		ValorUpsLV:    valorLV,
	}, nil
}

func (s *MedicaoService) Salvar(ctx context.Context, idAcionamento string, req dto.SalvarMedicaoRequest, userID uint64) (*entities.MedicaoOrcamento, error) {
	atual, err := s.Buscar(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}

	atual.ItensLM = req.ItensLM
	atual.ItensLV = req.ItensLV
	atual.ForaHorario = req.ForaHorario
	if req.ValorUpsLM != nil {
		atual.ValorUpsLM = *req.ValorUpsLM
	}
	if req.ValorUpsLV != nil {
		atual.ValorUpsLV = *req.ValorUpsLV
	}
	return s.persistir(ctx, atual, userID)
}

// AdicionarItem busca o código no catálogo da modalidade e soma na
// lista. Código repetido com a mesma operação vira incremento de
// quantidade.
func (s *MedicaoService) AdicionarItem(ctx context.Context, idAcionamento string, req dto.AdicionarItemMedicaoRequest, userID uint64) (*entities.MedicaoOrcamento, error) {
	codigo, err := s.codigoMORepo.BuscarPorCodigo(ctx, req.Codigo, req.Linha)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "Código de mão de obra não encontrado para a modalidade", err, nil)
		}
		return nil, err
	}

	atual, err := s.Buscar(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}

	novo := entities.MedicaoItem{
		Codigo:     codigo.Codigo,
		Descricao:  codigo.Descricao,
		Unidade:    codigo.Unidade,
		ValorUps:   codigo.Ups,
		Quantidade: 1,
		Operacao:   codigo.Operacao,
		Tipo:       codigo.Tipo,
	}
	if req.Linha == "LV" {
		atual.ItensLV = AdicionarItem(atual.ItensLV, novo)
	} else {
		atual.ItensLM = AdicionarItem(atual.ItensLM, novo)
	}
	return s.persistir(ctx, atual, userID)
}

func (s *MedicaoService) RemoverItem(ctx context.Context, idAcionamento string, req dto.RemoverItemMedicaoRequest, userID uint64) (*entities.MedicaoOrcamento, error) {
	atual, err := s.Buscar(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}
	if req.Linha == "LV" {
		atual.ItensLV = RemoverItem(atual.ItensLV, req.Codigo, req.Operacao)
	} else {
		atual.ItensLM = RemoverItem(atual.ItensLM, req.Codigo, req.Operacao)
	}
	return s.persistir(ctx, atual, userID)
}

func (s *MedicaoService) AjustarQuantidade(ctx context.Context, idAcionamento string, req dto.AjustarQuantidadeRequest, userID uint64) (*entities.MedicaoOrcamento, error) {
	atual, err := s.Buscar(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}
	if req.Linha == "LV" {
		atual.ItensLV = AjustarQuantidade(atual.ItensLV, req.Codigo, req.Operacao, req.Quantidade)
	} else {
		atual.ItensLM = AjustarQuantidade(atual.ItensLM, req.Codigo, req.Operacao, req.Quantidade)
	}
	return s.persistir(ctx, atual, userID)
}

func (s *MedicaoService) persistir(ctx context.Context, m *entities.MedicaoOrcamento, userID uint64) (*entities.MedicaoOrcamento, error) {
	resumoLM := CalcularResumo("LM", m.ItensLM, m.ValorUpsLM, m.ForaHorario)
	resumoLV := CalcularResumo("LV", m.ItensLV, m.ValorUpsLV, m.ForaHorario)
	m.TotalBaseLM = resumoLM.TotalBase
	m.TotalBaseLV = resumoLV.TotalBase
	m.TotalFinalLM = resumoLM.TotalFinal
	m.TotalFinalLV = resumoLV.TotalFinal
	m.AtualizadoPor = null.Uint64From(userID)

	if err := s.medicaoRepo.Salvar(ctx, m); err != nil {
		s.logger.Error("erro ao salvar rascunho de medição", zap.String("id_acionamento", m.IDAcionamento), zap.Error(err))
		return nil, err
	}
	return m, nil
}

// Resumo fecha a modalidade pedida a partir do rascunho gravado.
func (s *MedicaoService) Resumo(ctx context.Context, idAcionamento, linha string) (*dto.ResumoMaoDeObra, error) {
	m, err := s.Buscar(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}
	resumo := CalcularResumo(linha, m.Itens(linha), m.ValorUps(linha), m.ForaHorario)
	return &resumo, nil
}

// AbrirSessao zera as marcas de documentos gerados. Todo registro de
// medição exige documentos gerados dentro da sessão corrente.
func (s *MedicaoService) AbrirSessao(ctx context.Context, idAcionamento string) (*repositories.SessaoMedicao, error) {
	if _, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento); err != nil {
		return nil, err
	}
	return s.sessaoRepo.Abrir(ctx, idAcionamento)
}

// RegistrarMedicao é a catraca da etapa de medição para a criação de OS:
// cada modalidade suportada precisa de equipe válida e de artefato
// gerado na sessão corrente.
func (s *MedicaoService) RegistrarMedicao(ctx context.Context, idAcionamento string, req dto.RegistrarMedicaoRequest) error {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento)
	if err != nil {
		return err
	}
	if a.EtapaAtual != 3 {
		return apperrors.NewHttpError(http.StatusConflict, "Acionamento não está na etapa de medição", nil, nil)
	}

	opcoes, err := s.resolver.OpcoesParaAcionamento(ctx, a)
	if err != nil {
		return err
	}
	sessao, err := s.sessaoRepo.Buscar(ctx, idAcionamento)
	if err != nil {
		return err
	}
	if sessao == nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Nenhuma sessão de medição aberta; gere os documentos antes de registrar", nil, nil)
	}

	valida := func(linha catalog.Linha, equipe string) error {
		if equipe == "" || !EquipeValidaParaLinha(opcoes.Opcoes, equipe, linha) {
			return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Equipe inválida para a modalidade "+string(linha), nil, nil)
		}
		if !sessao.Gerou(string(linha)) {
			return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Gere o orçamento ou a planilha de "+string(linha)+" na sessão atual antes de registrar", nil, nil)
		}
		return nil
	}

	if a.SuportaLM() {
		if err := valida(catalog.LinhaLM, req.EquipeLM); err != nil {
			return err
		}
	}
	if a.SuportaLV() {
		if err := valida(catalog.LinhaLV, req.EquipeLV); err != nil {
			return err
		}
	}

	extras := map[string]interface{}{"medicao_registrada_em": time.Now()}
	if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, idAcionamento, 4, extras); err != nil {
		return err
	}
	if err := s.cacheRepo.InvalidarContagens(ctx); err != nil {
		s.logger.Warn("falha ao invalidar cache de contagens", zap.Error(err))
	}
	s.logger.Info("medição registrada",
		zap.String("id_acionamento", idAcionamento),
		zap.String("equipe_lm", req.EquipeLM),
		zap.String("equipe_lv", req.EquipeLV))
	return nil
}
