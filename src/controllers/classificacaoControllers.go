package controllers

import (
	"net/http"
	"strconv"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ClassificacaoController struct {
	service *services.ClassificacaoService
}

func NewClassificacaoController(service *services.ClassificacaoService) *ClassificacaoController {
	return &ClassificacaoController{service: service}
}

func (c *ClassificacaoController) GetAllClassificacoes(ctx *gin.Context) {
	classificacoes, err := c.service.GetAllClassificacoes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classificacoes)
}

func (c *ClassificacaoController) GetClassificacaoByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de classificação inválido"})
		return
	}

	classificacao, err := c.service.GetClassificacaoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classificacao)
}

func (c *ClassificacaoController) CreateClassificacao(ctx *gin.Context) {
	var classificacao models.ClassificacaoModel
	if err := ctx.ShouldBindJSON(&classificacao); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	classificacao.Ativo = true

	if err := c.service.CreateClassificacao(&classificacao); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, classificacao)
}

func (c *ClassificacaoController) UpdateClassificacao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de classificação inválido"})
		return
	}

	var updates models.ClassificacaoModel
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classificacao, err := c.service.UpdateClassificacao(id, &updates)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classificacao)
}

func (c *ClassificacaoController) DeleteClassificacao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de classificação inválido"})
		return
	}

	if err := c.service.DeleteClassificacao(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Classificação excluída com sucesso"})
}
