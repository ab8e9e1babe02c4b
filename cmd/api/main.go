package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rectificadora/internal/config"
	"rectificadora/internal/database"
	"rectificadora/internal/middleware"
	"rectificadora/internal/modules/asistente"
	"rectificadora/internal/modules/auth"
	"rectificadora/internal/modules/clientes"
	"rectificadora/internal/modules/clima"
	"rectificadora/internal/modules/dashboard"
	"rectificadora/internal/modules/documentos"
	"rectificadora/internal/modules/facturas"
	"rectificadora/internal/modules/fotos"
	"rectificadora/internal/modules/ordenes"
	"rectificadora/internal/pkg/jwt"
	"rectificadora/internal/repository"
	"rectificadora/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	ordenFotoRepo := repository.NewOrdenFotoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	blobStore := storage.NewLocal(cfg.StorageDir, cfg.StorageSecret, "/storage")

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	boardHub := ordenes.NewHub()
	ordenService := ordenes.NewService(ordenRepo, boardHub)
	ordenHandler := ordenes.NewHandler(ordenService, boardHub)

	fotoResolver := fotos.NewResolver(ordenRepo, ordenFotoRepo, blobStore, cfg.SignedURLTTL)
	fotoService := fotos.NewService(ordenRepo, ordenFotoRepo, blobStore, cfg.MaxFotosPorCategoria)
	fotoHandler := fotos.NewHandler(fotoResolver, fotoService, cfg.MaxFotoSize)

	clienteService := clientes.NewService(clienteRepo, ordenRepo)
	clienteHandler := clientes.NewHandler(clienteService)

	facturaService := facturas.NewService(facturaRepo)
	facturaHandler := facturas.NewHandler(facturaService)

	dashboardService := dashboard.NewService(ordenRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	documentoService := documentos.NewService(blobStore, blobStore, cfg.SignedURLTTL)
	documentoHandler := documentos.NewHandler(documentoService, cfg.MaxDocumentoSize)

	chatService := asistente.NewService(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	var tareaGen asistente.TareaGenerator
	if cfg.GeminiAPIKey != "" {
		tareaGen, err = asistente.NewGeminiTareas(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini: %v", err)
		}
	}
	asistenteHandler := asistente.NewHandler(chatService, tareaGen)

	lat, err := strconv.ParseFloat(cfg.ClimaLatitud, 64)
	if err != nil {
		log.Fatalf("config: invalid CLIMA_LATITUD %q", cfg.ClimaLatitud)
	}
	lon, err := strconv.ParseFloat(cfg.ClimaLongitud, 64)
	if err != nil {
		log.Fatalf("config: invalid CLIMA_LONGITUD %q", cfg.ClimaLongitud)
	}
	climaService := clima.NewService(cfg.ClimaBaseURL, lat, lon, cfg.ClimaTimeout)
	climaHandler := clima.NewHandler(climaService)

	storageHandler := storage.NewHandler(blobStore)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	storageHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(jwtService))
		{
			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())

			authHandler.RegisterProtectedRoutes(protected)
			ordenHandler.RegisterRoutes(protected, admin)
			fotoHandler.RegisterRoutes(protected)
			clienteHandler.RegisterRoutes(protected, admin)
			facturaHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			documentoHandler.RegisterRoutes(protected, admin)
			asistenteHandler.RegisterRoutes(protected)
			climaHandler.RegisterRoutes(protected)
		}
	}

	defer boardHub.Close()

	log.Printf("msg=server_start port=%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
