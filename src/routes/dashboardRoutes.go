package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(api *gin.RouterGroup, service *services.DashboardService) {
	controller := controllers.NewDashboardController(service)

	api.GET("/dashboard/stats", controller.GetStats)
}
