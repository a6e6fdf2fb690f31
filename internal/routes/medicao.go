package routes

import (
	"acionamento-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMedicaoRouter(g *echo.Group, ctrl *controllers.MedicaoController, orcamentoCtrl *controllers.OrcamentoController) {
	g.GET("/medicoes/codigos", ctrl.BuscarCodigos)
	g.GET("/equipes", ctrl.ListarEquipes)

	g.GET("/acionamentos/:id/medicao", ctrl.Buscar)
	g.PUT("/acionamentos/:id/medicao", ctrl.Salvar)
	g.POST("/acionamentos/:id/medicao/itens", ctrl.AdicionarItem)
	g.DELETE("/acionamentos/:id/medicao/itens", ctrl.RemoverItem)
	g.PATCH("/acionamentos/:id/medicao/itens", ctrl.AjustarQuantidade)
	g.GET("/acionamentos/:id/medicao/equipes", ctrl.OpcoesEquipe)
	g.POST("/acionamentos/:id/medicao/sessao", ctrl.AbrirSessao)
	g.POST("/acionamentos/:id/medicao/registrar", ctrl.Registrar)

	g.GET("/acionamentos/:id/orcamento", orcamentoCtrl.Contexto)
	g.GET("/acionamentos/:id/orcamento/pdf", orcamentoCtrl.GerarPDF)
	g.GET("/acionamentos/:id/orcamento/planilha", orcamentoCtrl.GerarPlanilha)
}
