package routes

import (
	"acionamento-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runObraRouter(g *echo.Group, ctrl *controllers.ObraController) {
	g.POST("/acionamentos/:id/os", ctrl.RegistrarOS)
	g.POST("/acionamentos/:id/book", ctrl.MarcarBookEnviado)
	g.PUT("/acionamentos/:id/obra", ctrl.RegistrarObra)
}
