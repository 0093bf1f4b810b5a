package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/dtos"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTombamentoRouter(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()
	db := testDB(t)
	controller := NewTombamentoController(
		services.NewTombamentoService(db),
		services.NewHistoricoService(db),
	)

	router := testRouter()
	router.POST("/api/tombamentos", controller.CreateTombamento)
	router.GET("/api/tombamentos", controller.GetAllTombamentos)
	router.DELETE("/api/tombamentos/:id", controller.DeleteTombamento)
	return db, router
}

func postForm(t *testing.T, handler http.Handler, url string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateTombamentoLoteEndpoint(t *testing.T) {
	db, router := setupTombamentoRouter(t)

	localizacao := "A"
	produto := models.ProdutoModel{Produto: "Notebook", Localizacao: &localizacao, Ativo: true}
	require.NoError(t, db.Create(&produto).Error)

	rec := postForm(t, router, "/api/tombamentos", map[string]string{
		"fkproduto":  "1",
		"tombamento": "$1-3",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dtos.LoteTombamentoDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	require.Equal(t, "3 tombamentos criados com sucesso", resp.Message)
	require.Len(t, resp.Tombamentos, 3)
	require.Equal(t, "A000001", resp.Tombamentos[0].Tombamento)
	require.Equal(t, "A000003", resp.Tombamentos[2].Tombamento)
}

func TestCreateTombamentoEndpointValidation(t *testing.T) {
	db, router := setupTombamentoRouter(t)

	produto := models.ProdutoModel{Produto: "Celular", Ativo: true}
	require.NoError(t, db.Create(&produto).Error)

	t.Run("sem campos obrigatórios", func(t *testing.T) {
		rec := postForm(t, router, "/api/tombamentos", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "obrigatórios")
	})

	t.Run("imei curto", func(t *testing.T) {
		rec := postForm(t, router, "/api/tombamentos", map[string]string{
			"fkproduto":  "1",
			"tombamento": "100",
			"imei":       "12345",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "15 dígitos")
	})

	t.Run("imei com 15 dígitos", func(t *testing.T) {
		rec := postForm(t, router, "/api/tombamentos", map[string]string{
			"fkproduto":  "1",
			"tombamento": "100",
			"imei":       "123456789012345",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("lote com intervalo invertido", func(t *testing.T) {
		rec := postForm(t, router, "/api/tombamentos", map[string]string{
			"fkproduto":  "1",
			"tombamento": "$10-2",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lote malformado não vira tombamento literal", func(t *testing.T) {
		for _, raw := range []string{"$1-", "$a-b", "$1+3"} {
			rec := postForm(t, router, "/api/tombamentos", map[string]string{
				"fkproduto":  "1",
				"tombamento": raw,
			})
			require.Equal(t, http.StatusBadRequest, rec.Code, "código %q", raw)
			require.Contains(t, rec.Body.String(), "formato de lote inválido")
		}

		var count int64
		require.NoError(t, db.Model(&models.TombamentoModel{}).
			Where("tombamento LIKE ?", "$%").
			Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
}

func TestDeleteTombamentoEndpoint(t *testing.T) {
	db, router := setupTombamentoRouter(t)

	produto := models.ProdutoModel{Produto: "Cadeira", Ativo: true}
	require.NoError(t, db.Create(&produto).Error)
	tombamento := models.TombamentoModel{
		FkProduto:  produto.Id,
		Tombamento: "000900",
		Status:     models.StatusDisponivel,
		Ativo:      true,
	}
	require.NoError(t, db.Create(&tombamento).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/tombamentos/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/tombamentos/1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
