package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/quizzme-server/internal/api/http/context"
	"github.com/dtroode/quizzme-server/internal/api/http/handler"
	"github.com/dtroode/quizzme-server/internal/api/http/router"
	httpServer "github.com/dtroode/quizzme-server/internal/api/http/server"
	"github.com/dtroode/quizzme-server/internal/config"
	"github.com/dtroode/quizzme-server/internal/generator/openai"
	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
	"github.com/dtroode/quizzme-server/internal/observability"
	"github.com/dtroode/quizzme-server/internal/payment/stripe"
	"github.com/dtroode/quizzme-server/internal/repository"
	"github.com/dtroode/quizzme-server/internal/server"
	"github.com/dtroode/quizzme-server/internal/service"
	storage "github.com/dtroode/quizzme-server/internal/storage/minio"
	"github.com/dtroode/quizzme-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	if cfg.TracingEnabled {
		shutdownTracing, err := observability.InitTracing(os.Stdout)
		if err != nil {
			logger.Fatal("failed to initialize tracing", "error", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Error("failed to flush traces", "error", err)
			}
		}()
	}

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize document store", "error", err, "driver", cfg.DocumentStore.Driver)
	}
	defer closeStore()

	deckService := service.NewDeck(store, logger)
	generationService := service.NewGeneration(openai.New(cfg.OpenAI, logger), logger)
	checkoutService := service.NewCheckout(stripe.NewProvider(cfg.Stripe.SecretKey), cfg.PublicURL, logger)

	var exportService handler.ExportService
	if cfg.ExportsEnabled() {
		storageClient, err := storage.NewClientFromConfig(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		exportService = service.NewExport(deckService, storageClient, logger)
	} else {
		logger.Info("object storage not configured, deck exports disabled")
	}

	tokenManager := token.NewJWT(cfg.Identity.Secret)
	ctxMgr := httpctx.NewManager()

	r := router.New(
		deckService,
		generationService,
		checkoutService,
		exportService,
		tokenManager,
		ctxMgr,
		router.Config{
			SignInURL:      cfg.Identity.SignInURL,
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			GenerateRPS:    cfg.RateLimit.GenerateRPS,
			GenerateBurst:  cfg.RateLimit.GenerateBurst,
		},
		logger,
	)
	h, err := r.Register()
	if err != nil {
		logger.Fatal("failed to register routes", "error", err)
	}

	srv := httpServer.NewHTTPServer(h, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion(os.Stdout)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion(w io.Writer) {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}
