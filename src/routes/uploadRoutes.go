package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(api *gin.RouterGroup) {
	controller := controllers.NewUploadController()

	api.GET("/uploads/:filename", controller.ServeFoto)
}
