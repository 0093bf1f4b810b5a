package services

import (
	"testing"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/stretchr/testify/require"
)

func TestCreateTransferenciaMovesAllocation(t *testing.T) {
	db := testDB(t)
	alocacaoService := NewAlocacaoService(db)
	service := NewTransferenciaService(db)

	produto := criarProduto(t, db, "Notebook", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000010")
	origem := criarUnidade(t, db, "UBS Centro")
	destino := criarUnidade(t, db, "UBS Norte")

	_, err := alocacaoService.CreateAlocacao(&models.AlocacaoModel{
		FkTombamento:       tombamento.Id,
		FkUnidadeSaude:     origem.Id,
		ResponsavelUnidade: "Maria",
		DataAlocacao:       dia(2025, time.January, 10),
		Ativo:              true,
	})
	require.NoError(t, err)

	transferencia, err := service.CreateTransferencia(&models.TransferenciaModel{
		FkTombamento:       tombamento.Id,
		FkUnidadeOrigem:    intPtr(origem.Id),
		FkUnidadeDestino:   destino.Id,
		ResponsavelDestino: "João",
		DataTransferencia:  dia(2025, time.February, 1),
		Ativo:              true,
	})
	require.NoError(t, err)
	require.NotZero(t, transferencia.Id)

	// Origin allocation deactivated, destination allocation opened
	var alocacoes []models.AlocacaoModel
	require.NoError(t, db.Where("fk_tombamento = ?", tombamento.Id).Order("id").Find(&alocacoes).Error)
	require.Len(t, alocacoes, 2)
	require.False(t, alocacoes[0].Ativo)
	require.Equal(t, origem.Id, alocacoes[0].FkUnidadeSaude)
	require.True(t, alocacoes[1].Ativo)
	require.Equal(t, destino.Id, alocacoes[1].FkUnidadeSaude)
	require.Equal(t, "João", alocacoes[1].ResponsavelUnidade)

	// Asset stays allocated, just elsewhere
	require.Equal(t, models.StatusAlocado, statusDoTombamento(t, db, tombamento.Id))
}

func TestCreateTransferenciaWithoutOrigin(t *testing.T) {
	db := testDB(t)
	service := NewTransferenciaService(db)

	produto := criarProduto(t, db, "Notebook", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000011")
	destino := criarUnidade(t, db, "UBS Norte")

	_, err := service.CreateTransferencia(&models.TransferenciaModel{
		FkTombamento:      tombamento.Id,
		FkUnidadeDestino:  destino.Id,
		DataTransferencia: dia(2025, time.February, 1),
		Ativo:             true,
	})
	require.NoError(t, err)

	// Destination allocation created with fallback responsible parties
	var alocacao models.AlocacaoModel
	require.NoError(t, db.Where("fk_tombamento = ?", tombamento.Id).First(&alocacao).Error)
	require.True(t, alocacao.Ativo)
	require.Equal(t, "Transferência Automática", alocacao.ResponsavelUnidade)
	require.Equal(t, "Sistema", *alocacao.Responsavel)
}

func TestCreateTransferenciaRejectsSameUnit(t *testing.T) {
	db := testDB(t)
	service := NewTransferenciaService(db)

	produto := criarProduto(t, db, "Notebook", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000012")
	unidade := criarUnidade(t, db, "UBS Centro")

	_, err := service.CreateTransferencia(&models.TransferenciaModel{
		FkTombamento:      tombamento.Id,
		FkUnidadeOrigem:   intPtr(unidade.Id),
		FkUnidadeDestino:  unidade.Id,
		DataTransferencia: dia(2025, time.February, 1),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Unidade de origem e destino devem ser diferentes", verr.Message)
}

func TestCreateTransferenciaUnknownAsset(t *testing.T) {
	db := testDB(t)
	service := NewTransferenciaService(db)
	destino := criarUnidade(t, db, "UBS Norte")

	_, err := service.CreateTransferencia(&models.TransferenciaModel{
		FkTombamento:      9999,
		FkUnidadeDestino:  destino.Id,
		DataTransferencia: dia(2025, time.February, 1),
	})
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteTransferencia(t *testing.T) {
	db := testDB(t)
	service := NewTransferenciaService(db)

	produto := criarProduto(t, db, "Notebook", nil)
	tombamento := criarTombamento(t, db, produto.Id, "000013")
	destino := criarUnidade(t, db, "UBS Norte")

	transferencia, err := service.CreateTransferencia(&models.TransferenciaModel{
		FkTombamento:      tombamento.Id,
		FkUnidadeDestino:  destino.Id,
		DataTransferencia: dia(2025, time.February, 1),
		Ativo:             true,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTransferencia(transferencia.Id))

	transferencias, err := service.GetAllTransferencias()
	require.NoError(t, err)
	require.Empty(t, transferencias)
}
