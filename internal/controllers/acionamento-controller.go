package controllers

import (
	"net/http"
	"strconv"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/services"
	"acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AcionamentoController struct {
	acionamentoService *services.AcionamentoService
	materiaisService   *services.MateriaisService
	logger             *zap.Logger
}

func NewAcionamentoController(
	acionamentoService *services.AcionamentoService,
	materiaisService *services.MateriaisService,
	logger *zap.Logger,
) *AcionamentoController {
	return &AcionamentoController{
		acionamentoService: acionamentoService,
		materiaisService:   materiaisService,
		logger:             logger,
	}
}

func (c *AcionamentoController) Criar(ctx echo.Context) error {
	var req dto.CriarAcionamentoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	a, err := c.acionamentoService.Criar(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, a, "Acionamento criado com sucesso", http.StatusCreated)
}

func (c *AcionamentoController) Listar(ctx echo.Context) error {
	var req dto.ListarAcionamentosRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	lista, total, err := c.acionamentoService.Listar(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, lista, "Acionamentos listados com sucesso", http.StatusOK, total)
}

func (c *AcionamentoController) Quadro(ctx echo.Context) error {
	quadro, err := c.acionamentoService.Quadro(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, quadro, "Quadro de etapas", http.StatusOK)
}

func (c *AcionamentoController) Detalhar(ctx echo.Context) error {
	detalhe, err := c.acionamentoService.Detalhar(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, detalhe, "Acionamento encontrado", http.StatusOK)
}

func (c *AcionamentoController) Atualizar(ctx echo.Context) error {
	var req dto.AtualizarAcionamentoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.acionamentoService.Atualizar(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Acionamento atualizado com sucesso", http.StatusOK)
}

func (c *AcionamentoController) Despachar(ctx echo.Context) error {
	var req dto.DespacharRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	a, err := c.acionamentoService.Despachar(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, a, "Despacho registrado", http.StatusOK)
}

func (c *AcionamentoController) AvancarEtapa(ctx echo.Context) error {
	destino, err := strconv.Atoi(ctx.QueryParam("destino"))
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Etapa de destino inválida", err, nil),
			c.logger)
	}

	if err := c.acionamentoService.AvancarEtapa(ctx.Request().Context(), ctx.Param("id"), destino); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Acionamento avançado de etapa", http.StatusOK)
}

func (c *AcionamentoController) SalvarPreLista(ctx echo.Context) error {
	var req dto.SalvarPreListaRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	itens, err := c.materiaisService.SalvarPreLista(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, itens, "Pré-lista salva com sucesso", http.StatusOK)
}

func (c *AcionamentoController) SalvarConsumo(ctx echo.Context) error {
	var req dto.SalvarConsumoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	itens, err := c.materiaisService.SalvarConsumo(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, itens, "Consumo salvo com sucesso", http.StatusOK)
}

func (c *AcionamentoController) SalvarSucata(ctx echo.Context) error {
	var req dto.SalvarSucataRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	itens, err := c.materiaisService.SalvarSucata(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, itens, "Sucata salva com sucesso", http.StatusOK)
}
