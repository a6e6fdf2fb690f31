package controllers

import (
	"net/http"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/services"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ObraController cobre o rabo do fluxo: criação de OS, envio de book e
// registro do número da obra.
type ObraController struct {
	acionamentoService *services.AcionamentoService
	logger             *zap.Logger
}

func NewObraController(acionamentoService *services.AcionamentoService, logger *zap.Logger) *ObraController {
	return &ObraController{acionamentoService: acionamentoService, logger: logger}
}

func (c *ObraController) RegistrarOS(ctx echo.Context) error {
	var req dto.RegistrarOSRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.acionamentoService.RegistrarOS(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "OS registrada; acionamento enviado para o book", http.StatusOK)
}

func (c *ObraController) MarcarBookEnviado(ctx echo.Context) error {
	var req dto.MarcarBookRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.acionamentoService.MarcarBookEnviado(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Envio do book registrado", http.StatusOK)
}

func (c *ObraController) RegistrarObra(ctx echo.Context) error {
	var req dto.RegistrarObraRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.acionamentoService.RegistrarObra(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Número da obra registrado", http.StatusOK)
}
