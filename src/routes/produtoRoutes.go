package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupProdutoRoutes(api *gin.RouterGroup, service *services.ProdutoService) {
	controller := controllers.NewProdutoController(service)

	produtoGroup := api.Group("/produtos")
	{
		produtoGroup.GET("", controller.GetAllProdutos)
		produtoGroup.GET("/:id", controller.GetProdutoByID)
		produtoGroup.GET("/:id/localizacao", controller.GetLocalizacao)
		produtoGroup.GET("/:id/entradas", controller.GetEntradas)
	}
}
