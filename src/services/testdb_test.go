package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "patrimonio_test.db"),
	}, &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.ClassificacaoModel{},
		&models.ProdutoModel{},
		&models.PedidoModel{},
		&models.PedidoItemModel{},
		&models.UnidadeSaudeModel{},
		&models.SetorModel{},
		&models.ProfissionalModel{},
		&models.MantenedoraModel{},
		&models.TombamentoModel{},
		&models.TombamentoFotoModel{},
		&models.AlocacaoModel{},
		&models.AlocacaoFotoModel{},
		&models.TransferenciaModel{},
		&models.ManutencaoModel{},
	))

	return db
}

func criarProduto(t *testing.T, db *gorm.DB, nome string, localizacao *string) *models.ProdutoModel {
	t.Helper()
	produto := models.ProdutoModel{Produto: nome, Localizacao: localizacao, Ativo: true}
	require.NoError(t, db.Create(&produto).Error)
	return &produto
}

func criarTombamento(t *testing.T, db *gorm.DB, fkProduto int, tag string) *models.TombamentoModel {
	t.Helper()
	tombamento := models.TombamentoModel{
		FkProduto:  fkProduto,
		Tombamento: tag,
		Status:     models.StatusDisponivel,
		Ativo:      true,
	}
	require.NoError(t, db.Create(&tombamento).Error)
	return &tombamento
}

func criarUnidade(t *testing.T, db *gorm.DB, nome string) *models.UnidadeSaudeModel {
	t.Helper()
	unidade := models.UnidadeSaudeModel{Nome: nome, Ativo: true}
	require.NoError(t, db.Create(&unidade).Error)
	return &unidade
}

func statusDoTombamento(t *testing.T, db *gorm.DB, id int) string {
	t.Helper()
	var tombamento models.TombamentoModel
	require.NoError(t, db.First(&tombamento, id).Error)
	return tombamento.Status
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}
