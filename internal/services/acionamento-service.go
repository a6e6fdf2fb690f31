package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AcionamentoService struct {
	acionamentoRepo repositories.AcionamentoRepositoryInterface
	execucaoRepo    repositories.ExecucaoRepositoryInterface
	materiaisRepo   repositories.MateriaisRepositoryInterface
	equipeRepo      repositories.EquipeRepositoryInterface
	cacheRepo       repositories.CacheRepositoryInterface
	logger          *zap.Logger
}

func NewAcionamentoService(
	acionamentoRepo repositories.AcionamentoRepositoryInterface,
	execucaoRepo repositories.ExecucaoRepositoryInterface,
	materiaisRepo repositories.MateriaisRepositoryInterface,
	equipeRepo repositories.EquipeRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *AcionamentoService {
	return &AcionamentoService{
		acionamentoRepo: acionamentoRepo,
		execucaoRepo:    execucaoRepo,
		materiaisRepo:   materiaisRepo,
		equipeRepo:      equipeRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
	}
}

func (s *AcionamentoService) Criar(ctx context.Context, req dto.CriarAcionamentoRequest) (*entities.Acionamento, error) {
	a := &entities.Acionamento{
		IDAcionamento:     uuid.NewString(),
		CodigoAcionamento: req.NumeroAcionamento,
		Prioridade:        "emergencial",
		Modalidade:        req.Modalidade,
		EtapaAtual:        1,
		Status:            "aberto",
		Municipio:         null.NewString(req.Municipio, req.Municipio != ""),
		Descricao:         null.NewString(req.Descricao, req.Descricao != ""),
		Equipe:            null.NewString(req.Equipe, req.Equipe != ""),
		CodigoEquipe:      null.NewString(req.CodigoEquipe, req.CodigoEquipe != ""),
		DataAbertura:      time.Now(),
	}
	if err := s.acionamentoRepo.Criar(ctx, a); err != nil {
		s.logger.Error("erro ao criar acionamento", zap.String("codigo", req.NumeroAcionamento), zap.Error(err))
		return nil, err
	}
	s.invalidarContagens(ctx)
	return a, nil
}

func (s *AcionamentoService) Listar(ctx context.Context, req dto.ListarAcionamentosRequest) ([]entities.Acionamento, uint64, error) {
	if !EtapaValida(req.Etapa) {
		return nil, 0, apperrors.NewInvalidInputError("etapa inexistente: %d", req.Etapa)
	}
	return s.acionamentoRepo.Listar(ctx, req.Etapa, req.Busca, req.Limit, req.Offset)
}

func (s *AcionamentoService) BuscarPorID(ctx context.Context, id string) (*entities.Acionamento, error) {
	return s.acionamentoRepo.BuscarPorID(ctx, id)
}

// Detalhar junta acionamento, execução e listas filhas para a tela de
// detalhe. Ausência de execução não é erro.
func (s *AcionamentoService) Detalhar(ctx context.Context, id string) (*dto.AcionamentoDetalhe, error) {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	detalhe := &dto.AcionamentoDetalhe{Acionamento: *a}

	if execucao, err := s.execucaoRepo.BuscarPorAcionamento(ctx, id); err == nil {
		detalhe.Execucao = execucao
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if detalhe.PreLista, err = s.materiaisRepo.ListarPreLista(ctx, id); err != nil {
		return nil, err
	}
	if detalhe.Consumo, err = s.materiaisRepo.ListarConsumo(ctx, id); err != nil {
		return nil, err
	}
	if detalhe.Sucata, err = s.materiaisRepo.ListarSucata(ctx, id); err != nil {
		return nil, err
	}
	if detalhe.Equipes, err = s.equipeRepo.ListarVinculos(ctx, id); err != nil {
		return nil, err
	}
	return detalhe, nil
}

func (s *AcionamentoService) Atualizar(ctx context.Context, id string, req dto.AtualizarAcionamentoRequest) error {
	campos := map[string]interface{}{}
	aplica := func(coluna string, valor *string) {
		if valor != nil {
			campos[coluna] = *valor
		}
	}
	aplica("municipio", req.Municipio)
	aplica("descricao", req.Descricao)
	aplica("equipe", req.Equipe)
	aplica("codigo_equipe", req.CodigoEquipe)
	aplica("equipe_lm", req.EquipeLM)
	aplica("equipe_lv", req.EquipeLV)
	aplica("observacoes", req.Observacoes)

	if len(campos) == 0 {
		return nil
	}
	return s.acionamentoRepo.AtualizarCampos(ctx, id, campos)
}

// Contagens devolve o total de acionamentos por etapa, servido do cache
// quando há leitura recente.
func (s *AcionamentoService) Contagens(ctx context.Context) ([]dto.ContagemEtapa, error) {
	if contagens, ok, err := s.cacheRepo.BuscarContagens(ctx); err == nil && ok {
		return contagens, nil
	} else if err != nil {
		s.logger.Warn("cache de contagens indisponível", zap.Error(err))
	}

	contagens, err := s.acionamentoRepo.ContarPorEtapa(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cacheRepo.GravarContagens(ctx, contagens); err != nil {
		s.logger.Warn("falha ao gravar cache de contagens", zap.Error(err))
	}
	return contagens, nil
}

// Quadro cruza o registro estático de etapas com as contagens: é a
// resposta do painel, com zero explícito para etapas vazias.
func (s *AcionamentoService) Quadro(ctx context.Context) ([]dto.QuadroEtapa, error) {
	contagens, err := s.Contagens(ctx)
	if err != nil {
		return nil, err
	}
	totais := make(map[int]int64, len(contagens))
	for _, c := range contagens {
		totais[c.Etapa] = c.Total
	}

	quadro := make([]dto.QuadroEtapa, 0, len(Etapas))
	for _, e := range Etapas {
		quadro = append(quadro, dto.QuadroEtapa{
			Etapa:     e.Numero,
			Titulo:    e.Titulo,
			Descricao: e.Descricao,
			Rota:      e.Rota,
			Total:     totais[e.Numero],
		})
	}
	return quadro, nil
}

// Despachar grava os dados do despacho e, quando o acionamento está
// pronto (pré-lista montada, status de despacho, almoxarifado
// conferido), avança sozinho para a etapa de execução.
func (s *AcionamentoService) Despachar(ctx context.Context, id string, req dto.DespacharRequest) (*entities.Acionamento, error) {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.EtapaAtual != 1 {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Acionamento já saiu da etapa de recebimento", nil, nil)
	}

	dataDespacho, err := time.ParseInLocation("2006-01-02T15:04", req.DataDespacho, time.Local)
	if err != nil {
		if dataDespacho, err = time.Parse(time.RFC3339, req.DataDespacho); err != nil {
			return nil, apperrors.NewInvalidInputError("data de despacho inválida: %s", req.DataDespacho)
		}
	}

	status := req.Status
	if status == "" {
		status = "despachado"
	}
	if err := s.acionamentoRepo.Despachar(ctx, id, dataDespacho, status, req.AlmoxConferido); err != nil {
		return nil, err
	}

	preLista, err := s.materiaisRepo.ListarPreLista(ctx, id)
	if err != nil {
		return nil, err
	}

	pronto := len(preLista) > 0 &&
		strings.Contains(strings.ToLower(status), "despach") &&
		req.AlmoxConferido
	if pronto {
		extras := map[string]interface{}{"status": "em_execucao"}
		if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, id, 2, extras); err != nil {
			return nil, err
		}
		s.invalidarContagens(ctx)
		s.logger.Info("acionamento despachado para execução", zap.String("id_acionamento", id))
	}
	return s.acionamentoRepo.BuscarPorID(ctx, id)
}

// RegistrarOS fecha a etapa de criação de OS e move o acionamento para o
// envio de book.
func (s *AcionamentoService) RegistrarOS(ctx context.Context, id string, req dto.RegistrarOSRequest) error {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if a.EtapaAtual != 4 {
		return apperrors.NewHttpError(http.StatusConflict, "Acionamento não está na etapa de criação de OS", nil, nil)
	}
	extras := map[string]interface{}{
		"numero_os":    req.NumeroOS,
		"os_criada_em": time.Now(),
	}
	if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, id, 5, extras); err != nil {
		return err
	}
	s.invalidarContagens(ctx)
	return nil
}

// MarcarBookEnviado registra o envio do book na etapa 5, com o
// destinatário e a mensagem usados no e-mail. O número da obra só pode
// ser editado depois dessa marca.
func (s *AcionamentoService) MarcarBookEnviado(ctx context.Context, id string, req dto.MarcarBookRequest) error {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if a.EtapaAtual != 5 {
		return apperrors.NewHttpError(http.StatusConflict, "Acionamento não está na etapa de envio de book", nil, nil)
	}
	campos := map[string]interface{}{"book_enviado_em": time.Now()}
	if req.Destinatario != "" {
		campos["book_destinatario"] = req.Destinatario
	}
	if req.Mensagem != "" {
		campos["book_mensagem"] = req.Mensagem
	}
	return s.acionamentoRepo.AtualizarCampos(ctx, id, campos)
}

// RegistrarObra grava o número da obra. Exige book enviado e avança para
// a aprovação fiscal quando o acionamento ainda está na etapa 5.
func (s *AcionamentoService) RegistrarObra(ctx context.Context, id string, req dto.RegistrarObraRequest) error {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if !a.BookEnviadoEm.Valid {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Envie o book antes de registrar o número da obra", nil, nil)
	}

	campos := map[string]interface{}{
		"numero_obra":               req.NumeroObra,
		"numero_obra_atualizado_em": time.Now(),
	}
	if a.EtapaAtual == 5 {
		if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, id, 6, campos); err != nil {
			return err
		}
		s.invalidarContagens(ctx)
		return nil
	}
	return s.acionamentoRepo.AtualizarCampos(ctx, id, campos)
}

// AvancarEtapa cobre as estações administrativas do fim do fluxo
// (aprovações, lote, NF), onde a passagem é manual e sem pré-condição de
// dados.
func (s *AcionamentoService) AvancarEtapa(ctx context.Context, id string, destino int) error {
	if !EtapaValida(destino) {
		return apperrors.NewInvalidInputError("etapa inexistente: %d", destino)
	}
	a, err := s.acionamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	// As etapas com catraca própria não passam por aqui.
	if a.EtapaAtual < 6 || destino != a.EtapaAtual+1 {
		return apperrors.NewHttpError(http.StatusConflict, "Avanço manual só é permitido uma etapa por vez, a partir da aprovação fiscal", nil, nil)
	}
	if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, id, destino, nil); err != nil {
		return err
	}
	s.invalidarContagens(ctx)
	return nil
}

func (s *AcionamentoService) invalidarContagens(ctx context.Context) {
	if err := s.cacheRepo.InvalidarContagens(ctx); err != nil {
		s.logger.Warn("falha ao invalidar cache de contagens", zap.Error(err))
	}
}
