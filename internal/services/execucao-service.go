package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/entities"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type ExecucaoService struct {
	execucaoRepo    repositories.ExecucaoRepositoryInterface
	acionamentoRepo repositories.AcionamentoRepositoryInterface
	cacheRepo       repositories.CacheRepositoryInterface
	logger          *zap.Logger
}

func NewExecucaoService(
	execucaoRepo repositories.ExecucaoRepositoryInterface,
	acionamentoRepo repositories.AcionamentoRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *ExecucaoService {
	return &ExecucaoService{
		execucaoRepo:    execucaoRepo,
		acionamentoRepo: acionamentoRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
	}
}

func (s *ExecucaoService) Buscar(ctx context.Context, idAcionamento string) (*entities.Execucao, error) {
	return s.execucaoRepo.BuscarPorAcionamento(ctx, idAcionamento)
}

// Salvar grava os fatos de campo. Rascunho aceita qualquer combinação de
// campos; finalizar aplica a validação completa e avança o acionamento
// para a etapa de medição.
func (s *ExecucaoService) Salvar(ctx context.Context, idAcionamento string, req dto.SalvarExecucaoRequest) (*entities.Execucao, error) {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}

	e, err := montarExecucao(idAcionamento, req)
	if err != nil {
		return nil, err
	}

	if req.Finalizar {
		if a.EtapaAtual != 2 {
			return nil, apperrors.NewHttpError(http.StatusConflict, "Acionamento não está na etapa de execução", nil, nil)
		}
		if err := ValidarExecucaoCompleta(req); err != nil {
			return nil, err
		}
	}

	if err := s.execucaoRepo.Salvar(ctx, e); err != nil {
		s.logger.Error("erro ao salvar execução", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, err
	}

	if req.Finalizar {
		extras := map[string]interface{}{
			"status":                 "concluido",
			"execucao_finalizada_em": time.Now(),
		}
		if err := s.acionamentoRepo.AvancarEtapa(ctx, nil, idAcionamento, 3, extras); err != nil {
			return nil, err
		}
		if err := s.cacheRepo.InvalidarContagens(ctx); err != nil {
			s.logger.Warn("falha ao invalidar cache de contagens", zap.Error(err))
		}
		s.logger.Info("execução finalizada", zap.String("id_acionamento", idAcionamento))
	}
	return e, nil
}

// horários chegam do tablet como datetime-local, sem fuso.
var formatosHorario = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseHorario(valor string) (null.Time, error) {
	if strings.TrimSpace(valor) == "" {
		return null.Time{}, nil
	}
	for _, formato := range formatosHorario {
		if t, err := time.ParseInLocation(formato, valor, time.Local); err == nil {
			return null.TimeFrom(t), nil
		}
	}
	return null.Time{}, apperrors.NewInvalidInputError("horário inválido: %s", valor)
}

func nullStr(valor string) null.String {
	if strings.TrimSpace(valor) == "" {
		return null.String{}
	}
	return null.StringFrom(valor)
}

func montarExecucao(idAcionamento string, req dto.SalvarExecucaoRequest) (*entities.Execucao, error) {
	e := &entities.Execucao{IDAcionamento: idAcionamento, TrocaTransformador: req.TrocaTransformador}

	if req.KmInicial != nil {
		e.KmInicial = null.Float64From(*req.KmInicial)
	}
	if req.KmFinal != nil {
		e.KmFinal = null.Float64From(*req.KmFinal)
	}
	if req.KmInicial != nil && req.KmFinal != nil {
		if *req.KmFinal < *req.KmInicial {
			return nil, apperrors.NewInvalidInputError("km final menor que o km inicial")
		}
		e.KmTotal = null.Float64From(*req.KmFinal - *req.KmInicial)
	}

	var err error
	if e.SaidaBase, err = parseHorario(req.SaidaBase); err != nil {
		return nil, err
	}
	if e.InicioServico, err = parseHorario(req.InicioServico); err != nil {
		return nil, err
	}
	if e.RetornoServico, err = parseHorario(req.RetornoServico); err != nil {
		return nil, err
	}
	if e.RetornoBase, err = parseHorario(req.RetornoBase); err != nil {
		return nil, err
	}

	e.Alimentador = nullStr(req.Alimentador)
	e.Subestacao = nullStr(req.Subestacao)
	e.NumeroTransformador = nullStr(req.NumeroTransformador)
	e.IDPoste = nullStr(req.IDPoste)

	e.TrafoRetPotencia = nullStr(req.TrafoRetPotencia)
	e.TrafoRetMarca = nullStr(req.TrafoRetMarca)
	e.TrafoRetAno = nullStr(req.TrafoRetAno)
	e.TrafoRetTensaoPrimaria = nullStr(req.TrafoRetTensaoPrimaria)
	e.TrafoRetTensaoSecundaria = nullStr(req.TrafoRetTensaoSecundaria)
	e.TrafoRetNumeroSerie = nullStr(req.TrafoRetNumeroSerie)
	e.TrafoRetPatrimonio = nullStr(req.TrafoRetPatrimonio)

	e.TrafoInstPotencia = nullStr(req.TrafoInstPotencia)
	e.TrafoInstMarca = nullStr(req.TrafoInstMarca)
	e.TrafoInstAno = nullStr(req.TrafoInstAno)
	e.TrafoInstTensaoPrimaria = nullStr(req.TrafoInstTensaoPrimaria)
	e.TrafoInstTensaoSecundaria = nullStr(req.TrafoInstTensaoSecundaria)
	e.TrafoInstNumeroSerie = nullStr(req.TrafoInstNumeroSerie)
	e.TrafoInstPatrimonio = nullStr(req.TrafoInstPatrimonio)

	e.TensaoAN = nullStr(req.TensaoAN)
	e.TensaoBN = nullStr(req.TensaoBN)
	e.TensaoCN = nullStr(req.TensaoCN)
	e.TensaoAB = nullStr(req.TensaoAB)
	e.TensaoBC = nullStr(req.TensaoBC)
	e.TensaoCA = nullStr(req.TensaoCA)

	e.OSTablet = nullStr(req.OSTablet)
	e.SSNota = nullStr(req.SSNota)
	e.NumeroIntervencao = nullStr(req.NumeroIntervencao)
	e.Observacoes = nullStr(req.Observacoes)

	return e, nil
}

// ValidarExecucaoCompleta aplica as regras de fechamento da execução:
// campos obrigatórios, dados dos transformadores quando houve troca e a
// regra tudo-ou-nada das seis leituras de tensão.
func ValidarExecucaoCompleta(req dto.SalvarExecucaoRequest) error {
	faltando := make([]string, 0, 4)

	if req.KmInicial == nil {
		faltando = append(faltando, "km_inicial")
	}
	if req.KmFinal == nil {
		faltando = append(faltando, "km_final")
	}

	obrigatorios := map[string]string{
		"saida_base":           req.SaidaBase,
		"inicio_servico":       req.InicioServico,
		"retorno_servico":      req.RetornoServico,
		"retorno_base":         req.RetornoBase,
		"alimentador":          req.Alimentador,
		"subestacao":           req.Subestacao,
		"numero_transformador": req.NumeroTransformador,
		"id_poste":             req.IDPoste,
	}
	for campo, valor := range obrigatorios {
		if strings.TrimSpace(valor) == "" {
			faltando = append(faltando, campo)
		}
	}

	if req.TrocaTransformador {
		trafos := map[string]string{
			"trafo_ret_potencia":           req.TrafoRetPotencia,
			"trafo_ret_marca":              req.TrafoRetMarca,
			"trafo_ret_tensao_primaria":    req.TrafoRetTensaoPrimaria,
			"trafo_ret_tensao_secundaria":  req.TrafoRetTensaoSecundaria,
			"trafo_inst_potencia":          req.TrafoInstPotencia,
			"trafo_inst_tensao_primaria":   req.TrafoInstTensaoPrimaria,
			"trafo_inst_tensao_secundaria": req.TrafoInstTensaoSecundaria,
		}
		for campo, valor := range trafos {
			if strings.TrimSpace(valor) == "" {
				faltando = append(faltando, campo)
			}
		}
	}

	if len(faltando) > 0 {
		return apperrors.NewInvalidInputError("campos obrigatórios não preenchidos: %s", strings.Join(faltando, ", "))
	}

	preenchidas := 0
	for _, tensao := range req.Tensoes() {
		if strings.TrimSpace(tensao) != "" {
			preenchidas++
		}
	}
	if preenchidas != 0 && preenchidas != 6 {
		return apperrors.NewInvalidInputError("leituras de tensão incompletas: preencha as seis ou nenhuma")
	}
	return nil
}
