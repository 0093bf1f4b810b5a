package controllers

import (
	"path/filepath"
	"testing"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/gin-gonic/gin"
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

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}
