package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/eleccion-api/internal/application/auth"
	"github.com/jhoicas/eleccion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/eleccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/eleccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/eleccion-api/internal/interfaces/http"
	"github.com/jhoicas/eleccion-api/pkg/config"
	"github.com/jhoicas/eleccion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	if err := os.MkdirAll(cfg.Upload.PhotoDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.PhotoDir).Msg("crear directorio de fotos")
	}

	voterRepo := postgres.NewVoterRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	tallyRepo := postgres.NewTallyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(adminRepo, voterRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	gateUC := usecase.NewGateUseCase(settingRepo)
	votingUC := usecase.NewVotingUseCase(gateUC, voterRepo, candidateRepo, voteRepo)
	voterUC := usecase.NewVoterUseCase(voterRepo)
	importUC := usecase.NewImportUseCase(txRunner, cfg.Upload.SampleLimit)
	candidateUC := usecase.NewCandidateUseCase(candidateRepo)
	tallyUC := usecase.NewTallyUseCase(tallyRepo)

	// PDF: reporte imprimible de resultados
	pdfGenerator := infrapdf.NewMarotoResultsGenerator()
	reportUC := usecase.NewReportUseCase(tallyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxSheetMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Elección API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fotos de candidatos servidas como estáticos
	app.Static("/uploads/candidates", cfg.Upload.PhotoDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		GateUC:      gateUC,
		VotingUC:    votingUC,
		VoterUC:     voterUC,
		ImportUC:    importUC,
		CandidateUC: candidateUC,
		TallyUC:     tallyUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		PhotoDir:    cfg.Upload.PhotoDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
