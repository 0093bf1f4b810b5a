package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReferenciaRoutes(api *gin.RouterGroup, service *services.ReferenciaService) {
	controller := controllers.NewReferenciaController(service)

	api.GET("/unidades-saude", controller.GetUnidadesSaude)
	api.GET("/setores", controller.GetSetores)
	api.GET("/profissionais", controller.GetProfissionais)
	api.GET("/empresa", controller.GetEmpresa)
}
