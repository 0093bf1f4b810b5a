package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTombamentoRoutes(api *gin.RouterGroup, service *services.TombamentoService, historicoService *services.HistoricoService) {
	controller := controllers.NewTombamentoController(service, historicoService)

	tombamentoGroup := api.Group("/tombamentos")
	{
		// CRUD
		tombamentoGroup.GET("", controller.GetAllTombamentos)
		tombamentoGroup.GET("/:id", controller.GetTombamentoByID)
		tombamentoGroup.POST("", controller.CreateTombamento)
		tombamentoGroup.PUT("/:id", controller.UpdateTombamento)
		tombamentoGroup.DELETE("/:id", controller.DeleteTombamento)

		// Movement ledger of an asset
		tombamentoGroup.GET("/:id/historico", controller.GetHistorico)

		// Spreadsheet export
		tombamentoGroup.GET("/export", controller.ExportTombamentos)
	}
}
