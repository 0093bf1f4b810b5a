package controllers

import (
	"net/http"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReferenciaController struct {
	service *services.ReferenciaService
}

func NewReferenciaController(service *services.ReferenciaService) *ReferenciaController {
	return &ReferenciaController{service: service}
}

func (c *ReferenciaController) GetUnidadesSaude(ctx *gin.Context) {
	unidades, err := c.service.GetUnidadesSaude()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, unidades)
}

func (c *ReferenciaController) GetSetores(ctx *gin.Context) {
	setores, err := c.service.GetSetores()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, setores)
}

func (c *ReferenciaController) GetProfissionais(ctx *gin.Context) {
	profissionais, err := c.service.GetProfissionais()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profissionais)
}

func (c *ReferenciaController) GetEmpresa(ctx *gin.Context) {
	empresa, err := c.service.GetEmpresa()
	if err != nil {
		respondError(ctx, err)
		return
	}
	if empresa == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Empresa mantenedora não cadastrada"})
		return
	}
	ctx.JSON(http.StatusOK, empresa)
}
