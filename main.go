package main

import (
	"log"
	"os"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/db"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/middleware"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/routes"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/seed"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	middleware.SetSecretKey(secret)

	// Seed initial data
	seed.Seed(db)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	logger, err := middleware.NewLogger()
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}
	defer logger.Sync()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SetupCORS())

	// Services setup
	tombamentoService := services.NewTombamentoService(db)
	historicoService := services.NewHistoricoService(db)
	alocacaoService := services.NewAlocacaoService(db)
	transferenciaService := services.NewTransferenciaService(db)
	manutencaoService := services.NewManutencaoService(db)
	classificacaoService := services.NewClassificacaoService(db)
	produtoService := services.NewProdutoService(db)
	dashboardService := services.NewDashboardService(db)
	referenciaService := services.NewReferenciaService(db)
	userService := services.NewUserService(db)

	// Routes setup
	api := router.Group("/api")
	routes.SetupTombamentoRoutes(api, tombamentoService, historicoService)
	routes.SetupAlocacaoRoutes(api, alocacaoService)
	routes.SetupTransferenciaRoutes(api, transferenciaService)
	routes.SetupManutencaoRoutes(api, manutencaoService)
	routes.SetupClassificacaoRoutes(api, classificacaoService)
	routes.SetupProdutoRoutes(api, produtoService)
	routes.SetupDashboardRoutes(api, dashboardService)
	routes.SetupReferenciaRoutes(api, referenciaService)
	routes.SetupUploadRoutes(api)
	routes.SetupUserRoutes(api, userService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Patrimonio API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
