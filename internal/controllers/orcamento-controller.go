package controllers

import (
	"fmt"
	"net/http"

	"acionamento-system/internal/services"
	"acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrcamentoController struct {
	orcamentoService *services.OrcamentoService
	logger           *zap.Logger
}

func NewOrcamentoController(orcamentoService *services.OrcamentoService, logger *zap.Logger) *OrcamentoController {
	return &OrcamentoController{orcamentoService: orcamentoService, logger: logger}
}

func linhaDaQuery(ctx echo.Context) (string, error) {
	linha := ctx.QueryParam("linha")
	if linha != "LM" && linha != "LV" {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "Informe a modalidade na query: linha=LM ou linha=LV", nil, nil)
	}
	return linha, nil
}

// Contexto devolve o snapshot do orçamento em JSON, usado pela tela de
// conferência antes de gerar os arquivos.
func (c *OrcamentoController) Contexto(ctx echo.Context) error {
	linha, err := linhaDaQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	contexto, err := c.orcamentoService.MontarContexto(ctx.Request().Context(), ctx.Param("id"), linha)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, contexto, "Contexto do orçamento", http.StatusOK)
}

func (c *OrcamentoController) GerarPDF(ctx echo.Context) error {
	linha, err := linhaDaQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	conteudo, nome, err := c.orcamentoService.GerarOrcamentoPDF(ctx.Request().Context(), ctx.Param("id"), linha, ctx.QueryParam("layout"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nome))
	return ctx.Blob(http.StatusOK, "application/pdf", conteudo)
}

func (c *OrcamentoController) GerarPlanilha(ctx echo.Context) error {
	linha, err := linhaDaQuery(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	conteudo, nome, err := c.orcamentoService.GerarPlanilhaMedicao(ctx.Request().Context(), ctx.Param("id"), linha)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nome))
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", conteudo)
}
