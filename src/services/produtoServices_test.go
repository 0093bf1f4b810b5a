package services

import (
	"testing"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/stretchr/testify/require"
)

func TestGetEntradasFiltersExhaustedLines(t *testing.T) {
	db := testDB(t)
	service := NewProdutoService(db)

	produto := criarProduto(t, db, "Notebook", strPtr("A"))

	pedido := models.PedidoModel{DataPedido: dia(2025, time.January, 15), Tipo: "E", Estado: "F", Ativo: true}
	require.NoError(t, db.Create(&pedido).Error)

	// Line with 2 units, 1 already tagged: 1 still available
	parcial := models.PedidoItemModel{FkPedido: pedido.Id, FkProduto: produto.Id, QuantidadeEntrada: 2}
	require.NoError(t, db.Create(&parcial).Error)
	require.NoError(t, db.Create(&models.TombamentoModel{
		FkProduto:    produto.Id,
		FkPedidoItem: &parcial.Id,
		Tombamento:   "A000050",
		Status:       models.StatusDisponivel,
		Ativo:        true,
	}).Error)

	// Fully tagged line must not be listed
	esgotado := models.PedidoItemModel{FkPedido: pedido.Id, FkProduto: produto.Id, QuantidadeEntrada: 1}
	require.NoError(t, db.Create(&esgotado).Error)
	require.NoError(t, db.Create(&models.TombamentoModel{
		FkProduto:    produto.Id,
		FkPedidoItem: &esgotado.Id,
		Tombamento:   "A000051",
		Status:       models.StatusDisponivel,
		Ativo:        true,
	}).Error)

	// Open purchase order does not count
	aberto := models.PedidoModel{DataPedido: dia(2025, time.February, 1), Tipo: "E", Estado: "A", Ativo: true}
	require.NoError(t, db.Create(&aberto).Error)
	require.NoError(t, db.Create(&models.PedidoItemModel{
		FkPedido: aberto.Id, FkProduto: produto.Id, QuantidadeEntrada: 5,
	}).Error)

	entradas, err := service.GetEntradas(produto.Id)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	require.Equal(t, parcial.Id, entradas[0].PkPedidoItem)
	require.EqualValues(t, 2, entradas[0].QuantidadeEntrada)
	require.Equal(t, 1, entradas[0].QuantidadeTombada)
	require.EqualValues(t, 1, entradas[0].QuantidadeDisponivel)
}

func TestGetEntradasUnknownProduct(t *testing.T) {
	db := testDB(t)
	service := NewProdutoService(db)

	_, err := service.GetEntradas(9999)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestGetLocalizacao(t *testing.T) {
	db := testDB(t)
	service := NewProdutoService(db)

	comPrefixo := criarProduto(t, db, "Notebook", strPtr("A"))
	semPrefixo := criarProduto(t, db, "Cadeira", nil)

	localizacao, err := service.GetLocalizacao(comPrefixo.Id)
	require.NoError(t, err)
	require.Equal(t, "A", localizacao)

	localizacao, err = service.GetLocalizacao(semPrefixo.Id)
	require.NoError(t, err)
	require.Equal(t, "", localizacao)
}
