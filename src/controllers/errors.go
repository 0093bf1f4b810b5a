package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses: validation failures
// become 400, unknown ids 404, everything else a generic 500 with the real
// error kept server-side.
func respondError(ctx *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	log.Printf("internal error on %s %s: %v\n", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
}
