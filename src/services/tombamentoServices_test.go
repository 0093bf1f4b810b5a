package services

import (
	"testing"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/stretchr/testify/require"
)

func TestCreateTombamentoFormatsTag(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Notebook", strPtr("A"))

	tombamento := models.TombamentoModel{
		FkProduto:  produto.Id,
		Tombamento: "42",
		Ativo:      true,
	}
	require.NoError(t, service.CreateTombamento(&tombamento))
	require.Equal(t, "A000042", tombamento.Tombamento)
	require.Equal(t, models.StatusDisponivel, tombamento.Status)
}

func TestCreateTombamentoKeepsFreeFormTag(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Notebook", strPtr("A"))

	tombamento := models.TombamentoModel{
		FkProduto:  produto.Id,
		Tombamento: "  PAT-XYZ  ",
		Ativo:      true,
	}
	require.NoError(t, service.CreateTombamento(&tombamento))
	require.Equal(t, "PAT-XYZ", tombamento.Tombamento)
}

func TestCreateTombamentoValidation(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Celular", nil)

	t.Run("campos obrigatórios", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{FkProduto: produto.Id})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "Produto e número de tombamento são obrigatórios", verr.Message)
	})

	t.Run("imei inválido", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  produto.Id,
			Tombamento: "100",
			Imei:       strPtr("12345"),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "imei", verr.Field)
	})

	t.Run("imei válido", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  produto.Id,
			Tombamento: "101",
			Imei:       strPtr("123456789012345"),
			Ativo:      true,
		})
		require.NoError(t, err)
	})

	t.Run("mac inválido", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  produto.Id,
			Tombamento: "102",
			Mac:        strPtr("no-es-mac"),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "mac", verr.Field)
	})

	t.Run("mac com hífen", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  produto.Id,
			Tombamento: "103",
			Mac:        strPtr("AA-BB-CC-00-11-22"),
			Ativo:      true,
		})
		require.NoError(t, err)
	})

	t.Run("produto inexistente", func(t *testing.T) {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  9999,
			Tombamento: "104",
		})
		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
	})
}

func TestCreateTombamentoRejectsBatchSyntax(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Monitor", strPtr("A"))

	// Batch expressions, malformed ones included, never become literal tags
	for _, raw := range []string{"$1-3", "$1-", "$a-b", "$"} {
		err := service.CreateTombamento(&models.TombamentoModel{
			FkProduto:  produto.Id,
			Tombamento: raw,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "código %q deveria ser rejeitado", raw)
	}

	var count int64
	require.NoError(t, db.Model(&models.TombamentoModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateTombamentoLote(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Monitor", strPtr("A"))

	created, err := service.CreateTombamentoLote(&models.TombamentoModel{FkProduto: produto.Id}, "$1-3")
	require.NoError(t, err)
	require.Len(t, created, 3)
	require.Equal(t, "A000001", created[0].Tombamento)
	require.Equal(t, "A000002", created[1].Tombamento)
	require.Equal(t, "A000003", created[2].Tombamento)

	var count int64
	require.NoError(t, db.Model(&models.TombamentoModel{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
	for _, row := range created {
		require.Equal(t, models.StatusDisponivel, row.Status)
	}
}

func TestCreateTombamentoLoteInvalidRange(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Monitor", nil)

	for _, raw := range []string{"$10-2", "$5-5", "$1-102"} {
		_, err := service.CreateTombamentoLote(&models.TombamentoModel{FkProduto: produto.Id}, raw)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "expressão %s deveria ser rejeitada", raw)
	}

	var count int64
	require.NoError(t, db.Model(&models.TombamentoModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateTombamentoLoteRollsBackOnConflict(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Monitor", strPtr("A"))

	// A000002 already exists, so the batch $1-3 must fail on the second row
	criarTombamento(t, db, produto.Id, "A000002")

	_, err := service.CreateTombamentoLote(&models.TombamentoModel{FkProduto: produto.Id}, "$1-3")
	var lerr *LoteError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 1, lerr.Created)

	// The transaction rolled back: only the pre-existing row remains
	var count int64
	require.NoError(t, db.Model(&models.TombamentoModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateTombamentoBumpsVersionAndKeepsStatus(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Impressora", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000500")
	require.NoError(t, db.Model(tombamento).Update("status", models.StatusAlocado).Error)

	updated, err := service.UpdateTombamento(tombamento.Id, &models.TombamentoModel{
		Observacao: strPtr("revisado"),
		Status:     models.StatusDisponivel, // must be ignored
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated.Version)
	require.Equal(t, models.StatusAlocado, updated.Status)
	require.Equal(t, "revisado", *updated.Observacao)
}

func TestDeleteTombamento(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Impressora", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000600")

	require.NoError(t, service.DeleteTombamento(tombamento.Id))

	var after models.TombamentoModel
	require.NoError(t, db.First(&after, tombamento.Id).Error)
	require.False(t, after.Ativo)

	// Deleting twice reports not found
	var nferr *NotFoundError
	require.ErrorAs(t, service.DeleteTombamento(tombamento.Id), &nferr)
}

func TestGetAllTombamentosHidesInactive(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Cadeira", nil)
	criarTombamento(t, db, produto.Id, "000700")
	inativo := criarTombamento(t, db, produto.Id, "000701")
	require.NoError(t, service.DeleteTombamento(inativo.Id))

	tombamentos, err := service.GetAllTombamentos()
	require.NoError(t, err)
	require.Len(t, tombamentos, 1)
	require.Equal(t, "000700", tombamentos[0].Tombamento)
}

func TestGetAllTombamentosCacheIsIsolated(t *testing.T) {
	db := testDB(t)
	service := NewTombamentoService(db)
	produto := criarProduto(t, db, "Cadeira", nil)
	criarTombamento(t, db, produto.Id, "000710")

	first, err := service.GetAllTombamentos()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating a returned element must not leak into later reads
	first[0].Tombamento = "ADULTERADO"

	second, err := service.GetAllTombamentos()
	require.NoError(t, err)
	require.Equal(t, "000710", second[0].Tombamento)
}
