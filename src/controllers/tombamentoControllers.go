package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TombamentoController struct {
	service          *services.TombamentoService
	historicoService *services.HistoricoService
}

func NewTombamentoController(service *services.TombamentoService, historicoService *services.HistoricoService) *TombamentoController {
	return &TombamentoController{service: service, historicoService: historicoService}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (c *TombamentoController) GetAllTombamentos(ctx *gin.Context) {
	tombamentos, err := c.service.GetAllTombamentos()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tombamentos)
}

func (c *TombamentoController) GetTombamentoByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tombamento inválido"})
		return
	}

	tombamento, err := c.service.GetTombamentoByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tombamento)
}

// CreateTombamento handles both single and batch creation. A code matching
// the $inicio-fim syntax expands into one asset per tag and answers with
// {message, tombamentos, count}; anything else creates a single asset.
// Photos arrive as multipart "photos" file fields.
func (c *TombamentoController) CreateTombamento(ctx *gin.Context) {
	raw := strings.TrimSpace(ctx.PostForm("tombamento"))
	fkProduto, _ := strconv.Atoi(ctx.PostForm("fkproduto"))
	if fkProduto == 0 || raw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Produto e número de tombamento são obrigatórios"})
		return
	}

	tombamento := models.TombamentoModel{
		FkProduto:   fkProduto,
		Tombamento:  raw,
		Serial:      strPtr(ctx.PostForm("serial")),
		Imei:        strPtr(ctx.PostForm("imei")),
		Mac:         strPtr(ctx.PostForm("mac")),
		Observacao:  strPtr(ctx.PostForm("observacao")),
		Responsavel: strPtr(ctx.PostForm("responsavel")),
		Status:      ctx.PostForm("status"),
	}
	if fkPedidoItem, err := strconv.Atoi(ctx.PostForm("fkpedidoitem")); err == nil && fkPedidoItem != 0 {
		tombamento.FkPedidoItem = &fkPedidoItem
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		fotos, err := savePhotos(form)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, foto := range fotos {
			tombamento.Fotos = append(tombamento.Fotos, models.TombamentoFotoModel{
				Filename:     foto.Filename,
				OriginalName: foto.OriginalName,
				Mimetype:     foto.Mimetype,
				Size:         foto.Size,
			})
		}
	}

	// Anything starting with "$" belongs to the batch path; malformed
	// expressions fail there instead of being stored as literal tags.
	if strings.HasPrefix(raw, "$") {
		created, err := c.service.CreateTombamentoLote(&tombamento, raw)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dtos.LoteTombamentoDTO{
			Message:     strconv.Itoa(len(created)) + " tombamentos criados com sucesso",
			Tombamentos: created,
			Count:       len(created),
		})
		return
	}

	if err := c.service.CreateTombamento(&tombamento); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, tombamento)
}

func (c *TombamentoController) UpdateTombamento(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tombamento inválido"})
		return
	}

	updates := models.TombamentoModel{
		Tombamento:  strings.TrimSpace(ctx.PostForm("tombamento")),
		Serial:      strPtr(ctx.PostForm("serial")),
		Imei:        strPtr(ctx.PostForm("imei")),
		Mac:         strPtr(ctx.PostForm("mac")),
		Observacao:  strPtr(ctx.PostForm("observacao")),
		Responsavel: strPtr(ctx.PostForm("responsavel")),
	}
	if fkProduto, err := strconv.Atoi(ctx.PostForm("fkproduto")); err == nil && fkProduto != 0 {
		updates.FkProduto = fkProduto
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		fotos, err := savePhotos(form)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, foto := range fotos {
			updates.Fotos = append(updates.Fotos, models.TombamentoFotoModel{
				Filename:     foto.Filename,
				OriginalName: foto.OriginalName,
				Mimetype:     foto.Mimetype,
				Size:         foto.Size,
			})
		}
	}

	tombamento, err := c.service.UpdateTombamento(id, &updates)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tombamento)
}

func (c *TombamentoController) DeleteTombamento(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tombamento inválido"})
		return
	}

	if err := c.service.DeleteTombamento(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Tombamento excluído com sucesso"})
}

// GetHistorico returns the chronological movement log of one asset.
func (c *TombamentoController) GetHistorico(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de tombamento inválido"})
		return
	}

	historico, err := c.historicoService.GetHistorico(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, historico)
}

// ExportTombamentos streams the active inventory as an xlsx file.
func (c *TombamentoController) ExportTombamentos(ctx *gin.Context) {
	f, err := c.service.ExportTombamentosExcel()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", `attachment; filename="tombamentos.xlsx"`)
	if err := f.Write(ctx.Writer); err != nil {
		respondError(ctx, err)
	}
}
