package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/adapters/ai"
	"github.com/khoahotran/dynamic-profile/adapters/event"
	httpAdapter "github.com/khoahotran/dynamic-profile/adapters/http"
	"github.com/khoahotran/dynamic-profile/adapters/media_storage"
	"github.com/khoahotran/dynamic-profile/adapters/persistence"
	"github.com/khoahotran/dynamic-profile/internal/application/editor"
	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/application/usecase/aicontent"
	profileUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/profile"
	transferUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/transfer"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
	"github.com/khoahotran/dynamic-profile/pkg/tracing"
)

const generatedImagesFolder = "generated"

func main() {
	fmt.Println("Start Dynamic Profile API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "dynamic-profile-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}
	defer tp.Shutdown(context.Background())

	// Storage and store
	storage, closeStorage, err := persistence.NewDocumentStorage(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init document storage", err, zap.String("driver", cfg.Storage.Driver))
	}
	defer closeStorage()

	docStore := store.New(ctx, storage, cfg.Storage.Key, appLogger)
	defer docStore.Close()

	// Optional services
	var uploader service.Uploader
	if cfg.Cloudinary.CloudName != "" {
		uploader, err = media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
	} else {
		appLogger.Info("Cloudinary not configured, generated images stay inline")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		unsubscribe := docStore.Subscribe(kafkaClient.OnDocumentChanged(cfg.Storage.Key))
		defer unsubscribe()
	} else {
		appLogger.Info("Kafka not configured, change events disabled")
	}

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(docStore, appLogger)
	transferUseCase := transferUC.NewTransferUseCase(docStore, appLogger)
	bridge := aicontent.NewBridge(docStore, ai.Factory(ai.EnvFromConfig(cfg), appLogger), uploader, generatedImagesFolder, appLogger)

	// HTTP Handlers
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Profile:  httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Editor:   httpAdapter.NewEditorHandler(editor.NewEditors(docStore), docStore, appLogger),
		AI:       httpAdapter.NewAIHandler(bridge, docStore, appLogger),
		Transfer: httpAdapter.NewTransferHandler(transferUseCase, appLogger),
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Cannot run server", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
