package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupClassificacaoRoutes(api *gin.RouterGroup, service *services.ClassificacaoService) {
	controller := controllers.NewClassificacaoController(service)

	classificacaoGroup := api.Group("/classificacoes")
	{
		classificacaoGroup.GET("", controller.GetAllClassificacoes)
		classificacaoGroup.GET("/:id", controller.GetClassificacaoByID)
		classificacaoGroup.POST("", controller.CreateClassificacao)
		classificacaoGroup.PUT("/:id", controller.UpdateClassificacao)
		classificacaoGroup.DELETE("/:id", controller.DeleteClassificacao)
	}
}
