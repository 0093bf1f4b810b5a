package routes

import (
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/controllers"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/middleware"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(api *gin.RouterGroup, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	api.POST("/login", controller.AuthenticateUser)

	// Protected routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("", controller.GetAllUsers)
		userGroup.POST("", controller.CreateUser)
		userGroup.DELETE("/:id", controller.DeleteUser)
	}
}
