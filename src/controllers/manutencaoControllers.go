package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ManutencaoController struct {
	service *services.ManutencaoService
}

func NewManutencaoController(service *services.ManutencaoService) *ManutencaoController {
	return &ManutencaoController{service: service}
}

type manutencaoRequest struct {
	FkTombamento int     `json:"fktombamento"`
	DataRetirada string  `json:"dataretirada"`
	DataRetorno  *string `json:"dataretorno"`
	Motivo       string  `json:"motivo"`
	Responsavel  *string `json:"responsavel"`
	Observacao   *string `json:"observacao"`
}

func (c *ManutencaoController) GetAllManutencoes(ctx *gin.Context) {
	manutencoes, err := c.service.GetAllManutencoes()
	if err != nil {
		respondError(ctx, err)
		return
	}

	// Display-only delay flag, never persisted
	agora := time.Now()
	type manutencaoComAtraso struct {
		models.ManutencaoModel
		Atrasada bool `json:"atrasada"`
	}
	result := make([]manutencaoComAtraso, 0, len(manutencoes))
	for _, m := range manutencoes {
		result = append(result, manutencaoComAtraso{
			ManutencaoModel: m,
			Atrasada:        services.ManutencaoAtrasada(m.DataRetirada, m.DataRetorno, agora),
		})
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ManutencaoController) CreateManutencao(ctx *gin.Context) {
	var req manutencaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FkTombamento == 0 || req.DataRetirada == "" || req.Motivo == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Tombamento, data de retirada e motivo são obrigatórios"})
		return
	}
	dataRetirada, ok := parseData(req.DataRetirada)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data de retirada inválida"})
		return
	}

	manutencao := models.ManutencaoModel{
		FkTombamento: req.FkTombamento,
		DataRetirada: dataRetirada,
		Motivo:       req.Motivo,
		Responsavel:  req.Responsavel,
		Observacao:   req.Observacao,
	}
	if req.DataRetorno != nil && *req.DataRetorno != "" {
		dataRetorno, ok := parseData(*req.DataRetorno)
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data de retorno inválida"})
			return
		}
		manutencao.DataRetorno = &dataRetorno
	}

	created, err := c.service.CreateManutencao(&manutencao)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateManutencao applies a partial update; setting dataretorno on an open
// maintenance closes it and restores the asset status.
func (c *ManutencaoController) UpdateManutencao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de manutenção inválido"})
		return
	}

	var req manutencaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := models.ManutencaoModel{
		Motivo:      req.Motivo,
		Responsavel: req.Responsavel,
		Observacao:  req.Observacao,
	}
	if req.DataRetirada != "" {
		if dataRetirada, ok := parseData(req.DataRetirada); ok {
			updates.DataRetirada = dataRetirada
		}
	}
	if req.DataRetorno != nil && *req.DataRetorno != "" {
		dataRetorno, ok := parseData(*req.DataRetorno)
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data de retorno inválida"})
			return
		}
		updates.DataRetorno = &dataRetorno
	}

	manutencao, err := c.service.UpdateManutencao(id, &updates)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, manutencao)
}

func (c *ManutencaoController) DeleteManutencao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de manutenção inválido"})
		return
	}

	if err := c.service.DeleteManutencao(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Manutenção excluída com sucesso"})
}
