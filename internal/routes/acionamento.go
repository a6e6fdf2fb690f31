package routes

import (
	"acionamento-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAcionamentoRouter(g *echo.Group, ctrl *controllers.AcionamentoController, execucaoCtrl *controllers.ExecucaoController) {
	g.GET("/acionamentos", ctrl.Listar)
	g.GET("/etapas", ctrl.Quadro)
	g.POST("/acionamentos", ctrl.Criar)
	g.GET("/acionamentos/:id", ctrl.Detalhar)
	g.PATCH("/acionamentos/:id", ctrl.Atualizar)
	g.POST("/acionamentos/:id/despachar", ctrl.Despachar)
	g.POST("/acionamentos/:id/avancar", ctrl.AvancarEtapa)

	g.PUT("/acionamentos/:id/pre-lista", ctrl.SalvarPreLista)
	g.PUT("/acionamentos/:id/consumo", ctrl.SalvarConsumo)
	g.PUT("/acionamentos/:id/sucata", ctrl.SalvarSucata)

	g.GET("/acionamentos/:id/execucao", execucaoCtrl.Buscar)
	g.PUT("/acionamentos/:id/execucao", execucaoCtrl.Salvar)
}
