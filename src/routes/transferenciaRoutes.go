package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTransferenciaRoutes(api *gin.RouterGroup, service *services.TransferenciaService) {
	controller := controllers.NewTransferenciaController(service)

	transferenciaGroup := api.Group("/transferencias")
	{
		transferenciaGroup.GET("", controller.GetAllTransferencias)
		transferenciaGroup.POST("", controller.CreateTransferencia)
		transferenciaGroup.DELETE("/:id", controller.DeleteTransferencia)
	}
}
