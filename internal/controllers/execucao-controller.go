package controllers

import (
	"net/http"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/services"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ExecucaoController struct {
	execucaoService *services.ExecucaoService
	logger          *zap.Logger
}

func NewExecucaoController(execucaoService *services.ExecucaoService, logger *zap.Logger) *ExecucaoController {
	return &ExecucaoController{execucaoService: execucaoService, logger: logger}
}

func (c *ExecucaoController) Buscar(ctx echo.Context) error {
	e, err := c.execucaoService.Buscar(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, e, "Execução encontrada", http.StatusOK)
}

func (c *ExecucaoController) Salvar(ctx echo.Context) error {
	var req dto.SalvarExecucaoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	e, err := c.execucaoService.Salvar(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	mensagem := "Execução salva com sucesso"
	if req.Finalizar {
		mensagem = "Execução finalizada; acionamento enviado para medição"
	}
	return utils.SuccessResponse(ctx, e, mensagem, http.StatusOK)
}
