package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AlocacaoController struct {
	service *services.AlocacaoService
}

func NewAlocacaoController(service *services.AlocacaoService) *AlocacaoController {
	return &AlocacaoController{service: service}
}

// parseData accepts the date formats the client sends (date-only or RFC3339).
func parseData(raw string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (c *AlocacaoController) GetAllAlocacoes(ctx *gin.Context) {
	alocacoes, err := c.service.GetAllAlocacoes()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alocacoes)
}

// CreateAlocacao allocates an asset to a health unit. Multipart form with
// optional "photos" file fields.
func (c *AlocacaoController) CreateAlocacao(ctx *gin.Context) {
	fkTombamento, _ := strconv.Atoi(ctx.PostForm("fktombamento"))
	fkUnidade, _ := strconv.Atoi(ctx.PostForm("fkunidadesaude"))
	responsavelUnidade := ctx.PostForm("responsavel_unidade")
	dataRaw := ctx.PostForm("dataalocacao")

	if fkTombamento == 0 || fkUnidade == 0 || responsavelUnidade == "" || dataRaw == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Tombamento, unidade, responsável e data são obrigatórios"})
		return
	}
	data, ok := parseData(dataRaw)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Data de alocação inválida"})
		return
	}

	alocacao := models.AlocacaoModel{
		FkTombamento:       fkTombamento,
		FkUnidadeSaude:     fkUnidade,
		ResponsavelUnidade: responsavelUnidade,
		DataAlocacao:       data,
		Termo:              strPtr(ctx.PostForm("termo")),
		Responsavel:        strPtr(ctx.PostForm("responsavel")),
		Observacao:         strPtr(ctx.PostForm("observacao")),
	}
	if fkSetor, err := strconv.Atoi(ctx.PostForm("fksetor")); err == nil && fkSetor != 0 {
		alocacao.FkSetor = &fkSetor
	}
	if fkProfissional, err := strconv.Atoi(ctx.PostForm("fkprofissional")); err == nil && fkProfissional != 0 {
		alocacao.FkProfissional = &fkProfissional
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		fotos, err := savePhotos(form)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, foto := range fotos {
			alocacao.Fotos = append(alocacao.Fotos, models.AlocacaoFotoModel{
				Filename:     foto.Filename,
				OriginalName: foto.OriginalName,
				Mimetype:     foto.Mimetype,
				Size:         foto.Size,
			})
		}
	}

	created, err := c.service.CreateAlocacao(&alocacao)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *AlocacaoController) UpdateAlocacao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de alocação inválido"})
		return
	}

	updates := models.AlocacaoModel{
		ResponsavelUnidade: ctx.PostForm("responsavel_unidade"),
		Termo:              strPtr(ctx.PostForm("termo")),
		Responsavel:        strPtr(ctx.PostForm("responsavel")),
		Observacao:         strPtr(ctx.PostForm("observacao")),
	}
	if fkUnidade, err := strconv.Atoi(ctx.PostForm("fkunidadesaude")); err == nil && fkUnidade != 0 {
		updates.FkUnidadeSaude = fkUnidade
	}
	if fkSetor, err := strconv.Atoi(ctx.PostForm("fksetor")); err == nil && fkSetor != 0 {
		updates.FkSetor = &fkSetor
	}
	if data, ok := parseData(ctx.PostForm("dataalocacao")); ok {
		updates.DataAlocacao = data
	}

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		fotos, err := savePhotos(form)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, foto := range fotos {
			updates.Fotos = append(updates.Fotos, models.AlocacaoFotoModel{
				Filename:     foto.Filename,
				OriginalName: foto.OriginalName,
				Mimetype:     foto.Mimetype,
				Size:         foto.Size,
			})
		}
	}

	alocacao, err := c.service.UpdateAlocacao(id, &updates)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alocacao)
}

func (c *AlocacaoController) DeleteAlocacao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID de alocação inválido"})
		return
	}

	if err := c.service.DeleteAlocacao(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Alocação excluída com sucesso"})
}
