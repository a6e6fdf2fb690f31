package controllers

import (
	"net/http"

	"acionamento-system/internal/dto"
	"acionamento-system/internal/services"
	"acionamento-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MedicaoController struct {
	medicaoService *services.MedicaoService
	codigoService  *services.CodigoMOService
	resolver       *services.EquipeResolverService
	acionamentos   *services.AcionamentoService
	logger         *zap.Logger
}

func NewMedicaoController(
	medicaoService *services.MedicaoService,
	codigoService *services.CodigoMOService,
	resolver *services.EquipeResolverService,
	acionamentos *services.AcionamentoService,
	logger *zap.Logger,
) *MedicaoController {
	return &MedicaoController{
		medicaoService: medicaoService,
		codigoService:  codigoService,
		resolver:       resolver,
		acionamentos:   acionamentos,
		logger:         logger,
	}
}

func (c *MedicaoController) Buscar(ctx echo.Context) error {
	m, err := c.medicaoService.Buscar(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, m, "Rascunho de medição", http.StatusOK)
}

func (c *MedicaoController) Salvar(ctx echo.Context) error {
	var req dto.SalvarMedicaoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	userID, _ := utils.GetUserIDFromCtx(ctx.Request().Context())

	m, err := c.medicaoService.Salvar(ctx.Request().Context(), ctx.Param("id"), req, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, m, "Medição salva com sucesso", http.StatusOK)
}

func (c *MedicaoController) AdicionarItem(ctx echo.Context) error {
	var req dto.AdicionarItemMedicaoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	userID, _ := utils.GetUserIDFromCtx(ctx.Request().Context())

	m, err := c.medicaoService.AdicionarItem(ctx.Request().Context(), ctx.Param("id"), req, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, m, "Item adicionado à medição", http.StatusOK)
}

func (c *MedicaoController) RemoverItem(ctx echo.Context) error {
	var req dto.RemoverItemMedicaoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	userID, _ := utils.GetUserIDFromCtx(ctx.Request().Context())

	m, err := c.medicaoService.RemoverItem(ctx.Request().Context(), ctx.Param("id"), req, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, m, "Item removido da medição", http.StatusOK)
}

func (c *MedicaoController) AjustarQuantidade(ctx echo.Context) error {
	var req dto.AjustarQuantidadeRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	userID, _ := utils.GetUserIDFromCtx(ctx.Request().Context())

	m, err := c.medicaoService.AjustarQuantidade(ctx.Request().Context(), ctx.Param("id"), req, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, m, "Quantidade ajustada", http.StatusOK)
}

func (c *MedicaoController) BuscarCodigos(ctx echo.Context) error {
	var req dto.BuscarCodigosRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	codigos, err := c.codigoService.Buscar(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, codigos, "Catálogo de mão de obra", http.StatusOK)
}

func (c *MedicaoController) ListarEquipes(ctx echo.Context) error {
	equipes, err := c.resolver.ListarEquipes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipes, "Cadastro de equipes", http.StatusOK)
}

func (c *MedicaoController) OpcoesEquipe(ctx echo.Context) error {
	a, err := c.acionamentos.BuscarPorID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	opcoes, err := c.resolver.OpcoesParaAcionamento(ctx.Request().Context(), a)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, opcoes, "Opções de equipe", http.StatusOK)
}

func (c *MedicaoController) AbrirSessao(ctx echo.Context) error {
	sessao, err := c.medicaoService.AbrirSessao(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, sessao, "Sessão de medição aberta", http.StatusOK)
}

func (c *MedicaoController) Registrar(ctx echo.Context) error {
	var req dto.RegistrarMedicaoRequest
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.medicaoService.RegistrarMedicao(ctx.Request().Context(), ctx.Param("id"), req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Medição registrada; acionamento enviado para criação de OS", http.StatusOK)
}
