package controllers

import (
	"net/http"
	"strconv"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ProdutoController struct {
	service *services.ProdutoService
}

func NewProdutoController(service *services.ProdutoService) *ProdutoController {
	return &ProdutoController{service: service}
}

func (c *ProdutoController) GetAllProdutos(ctx *gin.Context) {
	produtos, err := c.service.GetAllProdutos()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, produtos)
}

func (c *ProdutoController) GetProdutoByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de produto inválido"})
		return
	}

	produto, err := c.service.GetProdutoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, produto)
}

// GetLocalizacao exposes the location prefix the frontend uses to preview
// formatted tags before submitting a batch.
func (c *ProdutoController) GetLocalizacao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de produto inválido"})
		return
	}

	localizacao, err := c.service.GetLocalizacao(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"localizacao": localizacao})
}

func (c *ProdutoController) GetEntradas(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de produto inválido"})
		return
	}

	entradas, err := c.service.GetEntradas(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entradas)
}
