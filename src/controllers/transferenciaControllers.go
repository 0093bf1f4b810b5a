package controllers

import (
	"net/http"
	"strconv"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TransferenciaController struct {
	service *services.TransferenciaService
}

func NewTransferenciaController(service *services.TransferenciaService) *TransferenciaController {
	return &TransferenciaController{service: service}
}

// transferenciaRequest is the JSON payload of POST /api/transferencias,
// validated at the boundary instead of trusting client-shaped objects.
type transferenciaRequest struct {
	FkTombamento       int     `json:"fktombamento"`
	FkUnidadeOrigem    *int    `json:"fkunidadesaude_origem"`
	FkUnidadeDestino   int     `json:"fkunidadesaude_destino"`
	FkSetorOrigem      *int    `json:"fksetor_origem"`
	FkSetorDestino     *int    `json:"fksetor_destino"`
	ResponsavelDestino string  `json:"responsavel_destino"`
	DataTransferencia  string  `json:"datatransferencia"`
	Responsavel        *string `json:"responsavel"`
	Observacao         *string `json:"observacao"`
}

func (c *TransferenciaController) GetAllTransferencias(ctx *gin.Context) {
	transferencias, err := c.service.GetAllTransferencias()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, transferencias)
}

func (c *TransferenciaController) CreateTransferencia(ctx *gin.Context) {
	var req transferenciaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FkTombamento == 0 || req.FkUnidadeDestino == 0 || req.DataTransferencia == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Tombamento, unidade destino e data são obrigatórios"})
		return
	}
	data, ok := parseData(req.DataTransferencia)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data de transferência inválida"})
		return
	}

	transferencia := models.TransferenciaModel{
		FkTombamento:       req.FkTombamento,
		FkUnidadeOrigem:    req.FkUnidadeOrigem,
		FkUnidadeDestino:   req.FkUnidadeDestino,
		FkSetorOrigem:      req.FkSetorOrigem,
		FkSetorDestino:     req.FkSetorDestino,
		ResponsavelDestino: req.ResponsavelDestino,
		DataTransferencia:  data,
		Responsavel:        req.Responsavel,
		Observacao:         req.Observacao,
	}

	created, err := c.service.CreateTransferencia(&transferencia)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *TransferenciaController) DeleteTransferencia(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de transferência inválido"})
		return
	}

	if err := c.service.DeleteTransferencia(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Transferência excluída com sucesso"})
}
