package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"acionamento-system/internal/catalog"
	"acionamento-system/internal/documents"
	"acionamento-system/internal/dto"
	"acionamento-system/internal/repositories"
	"acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/utils"

	"go.uber.org/zap"
)

// OrcamentoService monta o snapshot de um acionamento e gera os
// documentos da medição (PDF de orçamento e planilha). Toda geração
// marca a sessão de medição corrente.
type OrcamentoService struct {
	acionamentoRepo repositories.AcionamentoRepositoryInterface
	execucaoRepo    repositories.ExecucaoRepositoryInterface
	materiaisRepo   repositories.MateriaisRepositoryInterface
	sessaoRepo      repositories.SessaoMedicaoRepositoryInterface
	medicaoService  *MedicaoService
	resolver        *EquipeResolverService
	logger          *zap.Logger
}

func NewOrcamentoService(
	acionamentoRepo repositories.AcionamentoRepositoryInterface,
	execucaoRepo repositories.ExecucaoRepositoryInterface,
	materiaisRepo repositories.MateriaisRepositoryInterface,
	sessaoRepo repositories.SessaoMedicaoRepositoryInterface,
	medicaoService *MedicaoService,
	resolver *EquipeResolverService,
	logger *zap.Logger,
) *OrcamentoService {
	return &OrcamentoService{
		acionamentoRepo: acionamentoRepo,
		execucaoRepo:    execucaoRepo,
		materiaisRepo:   materiaisRepo,
		sessaoRepo:      sessaoRepo,
		medicaoService:  medicaoService,
		resolver:        resolver,
		logger:          logger,
	}
}

// MontarContexto congela tudo que os geradores precisam: cabeçalho do
// acionamento, execução, resumo financeiro e listas de materiais.
func (s *OrcamentoService) MontarContexto(ctx context.Context, idAcionamento, linha string) (*dto.OrcamentoContexto, error) {
	a, err := s.acionamentoRepo.BuscarPorID(ctx, idAcionamento)
	if err != nil {
		return nil, err
	}
	if linha == "LM" && !a.SuportaLM() || linha == "LV" && !a.SuportaLV() {
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "Acionamento não tem medição da modalidade "+linha, nil, nil)
	}

	resumo, err := s.medicaoService.Resumo(ctx, idAcionamento, linha)
	if err != nil {
		return nil, err
	}

	contexto := &dto.OrcamentoContexto{
		Linha:             linha,
		CodigoAcionamento: a.CodigoAcionamento,
		Modalidade:        a.Modalidade,
		Municipio:         a.Municipio.String,
		Endereco:          a.Endereco.String,
		NumeroOS:          a.NumeroOS.String,
		NumeroObra:        a.NumeroObra.String,
		Descricao:         a.Descricao.String,
		DataEmissao:       time.Now().Format("02/01/2006 15:04"),
		Resumo:            *resumo,
	}

	if a.DataDespacho.Valid {
		despacho := a.DataDespacho.Time
		contexto.DataDespacho = utils.FormatDateTimeBr(&despacho)
	} else {
		contexto.DataDespacho = "--"
	}
	if a.ExecucaoFinalizadaEm.Valid {
		execucao := a.ExecucaoFinalizadaEm.Time
		contexto.DataExecucao = utils.FormatDateTimeBr(&execucao)
	} else {
		contexto.DataExecucao = "--"
	}

	if execucao, err := s.execucaoRepo.BuscarPorAcionamento(ctx, idAcionamento); err == nil {
		contexto.Execucao = execucao
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if contexto.Consumo, err = s.materiaisRepo.ListarConsumo(ctx, idAcionamento); err != nil {
		return nil, err
	}
	if contexto.Sucata, err = s.materiaisRepo.ListarSucata(ctx, idAcionamento); err != nil {
		return nil, err
	}

	opcoes, err := s.resolver.OpcoesParaAcionamento(ctx, a)
	if err != nil {
		return nil, err
	}
	padrao := opcoes.PadraoLM
	if linha == "LV" {
		padrao = opcoes.PadraoLV
	}
	for _, o := range opcoes.Opcoes {
		if o.Valor == padrao {
			contexto.EquipeDisplay = catalog.FormatarEquipeDisplay(o.Valor, catalog.Linha(o.Linha), catalog.Linha(linha))
			contexto.Encarregado = o.Encarregado
			break
		}
	}
	if contexto.EquipeDisplay == "" {
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "Nenhuma equipe de "+linha+" identificada; informe a equipe antes de gerar documentos", nil, nil)
	}
	return contexto, nil
}

// GerarOrcamentoPDF produz o PDF da modalidade no layout pedido e marca
// a sessão de medição.
func (s *OrcamentoService) GerarOrcamentoPDF(ctx context.Context, idAcionamento, linha, layout string) ([]byte, string, error) {
	contexto, err := s.MontarContexto(ctx, idAcionamento, linha)
	if err != nil {
		return nil, "", err
	}

	var conteudo []byte
	switch layout {
	case "", "padrao":
		conteudo, err = documents.GerarOrcamentoPDF(*contexto)
	case "empresa":
		conteudo, err = documents.GerarOrcamentoEmpresaPDF(*contexto)
	default:
		return nil, "", apperrors.NewInvalidInputError("layout de orçamento desconhecido: %s", layout)
	}
	if err != nil {
		s.logger.Error("erro ao gerar PDF de orçamento", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, "", err
	}

	if err := s.sessaoRepo.MarcarOrcamento(ctx, idAcionamento, linha); err != nil {
		s.logger.Warn("falha ao marcar orçamento na sessão", zap.Error(err))
	}
	nome := fmt.Sprintf("orcamento_%s_%s.pdf", contexto.CodigoAcionamento, linha)
	return conteudo, nome, nil
}

// GerarPlanilhaMedicao produz a planilha da modalidade e marca a sessão.
func (s *OrcamentoService) GerarPlanilhaMedicao(ctx context.Context, idAcionamento, linha string) ([]byte, string, error) {
	contexto, err := s.MontarContexto(ctx, idAcionamento, linha)
	if err != nil {
		return nil, "", err
	}

	conteudo, err := documents.GerarPlanilhaMedicao(*contexto)
	if err != nil {
		s.logger.Error("erro ao gerar planilha de medição", zap.String("id_acionamento", idAcionamento), zap.Error(err))
		return nil, "", err
	}

	if err := s.sessaoRepo.MarcarPlanilha(ctx, idAcionamento, linha); err != nil {
		s.logger.Warn("falha ao marcar planilha na sessão", zap.Error(err))
	}
	nome := fmt.Sprintf("medicao_%s_%s.xlsx", contexto.CodigoAcionamento, linha)
	return conteudo, nome, nil
}
