package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAlocacaoRoutes(api *gin.RouterGroup, service *services.AlocacaoService) {
	controller := controllers.NewAlocacaoController(service)

	alocacaoGroup := api.Group("/alocacoes")
	{
		alocacaoGroup.GET("", controller.GetAllAlocacoes)
		alocacaoGroup.POST("", controller.CreateAlocacao)
		alocacaoGroup.PUT("/:id", controller.UpdateAlocacao)
		alocacaoGroup.DELETE("/:id", controller.DeleteAlocacao)
	}
}
