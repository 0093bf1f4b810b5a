package controllers

import (
	"net/http"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.service.GetStats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
