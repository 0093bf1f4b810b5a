package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupManutencaoRoutes(api *gin.RouterGroup, service *services.ManutencaoService) {
	controller := controllers.NewManutencaoController(service)

	manutencaoGroup := api.Group("/manutencoes")
	{
		manutencaoGroup.GET("", controller.GetAllManutencoes)
		manutencaoGroup.POST("", controller.CreateManutencao)
		manutencaoGroup.PUT("/:id", controller.UpdateManutencao)
		manutencaoGroup.DELETE("/:id", controller.DeleteManutencao)
	}
}
