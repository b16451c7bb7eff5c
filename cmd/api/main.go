package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"review-desk/cmd/api/httpclient"
	"review-desk/cmd/api/llm"
	"review-desk/cmd/api/router"
	"review-desk/cmd/api/services"
	"review-desk/cmd/api/store"
	"review-desk/cmd/internal/eventbus"
	"review-desk/cmd/internal/logger"
	"review-desk/config"
	"review-desk/db"
	"review-desk/repositories"
)

// @title           Review Desk API
// @version         1.0
// @description     Customer review intake with AI replies and admin summaries
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, err := llm.NewClient(ctx, llm.Config{
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.ModelName,
		Timeout:    cfg.LLM.Timeout(),
		BaseURL:    cfg.LLM.BaseURL,
		HTTPClient: httpclient.New(httpclient.Config{Timeout: cfg.LLM.Timeout() + 5*time.Second}),
	})
	if err != nil {
		logger.Log.Errorf("failed to create gemini client: %v", err)
		os.Exit(1)
	}

	// 저장소 초기화
	st, mongoClient, err := openStore(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Errorf("failed to initialize storage: %v", err)
		os.Exit(1)
	}
	if mongoClient != nil {
		defer mongoClient.Disconnect(context.Background())
	}

	// EventBus 는 브로커가 설정된 경우에만 사용한다
	publisher := openPublisher(cfg.EventBus)
	defer publisher.Close()

	reviews := services.NewReviewService(generator, st, services.ReviewServiceOptions{
		Publisher: publisher,
		Topic:     cfg.EventBus.Topic,
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.New(router.Deps{
			Reviews:       reviews,
			Store:         st,
			StorageDriver: cfg.Storage.Driver,
			CORSOrigins:   cfg.Server.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("starting review desk api", logger.Fields{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Driver,
			"model":   cfg.LLM.ModelName,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server error: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logger.Log.Info("received shutdown signal, shutting down review desk api...")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("http server shutdown: %v", err)
	}
	logger.Log.Info("review desk api stopped")
}

func openStore(ctx context.Context, cfg config.StorageConfig) (store.Store, *mongo.Client, error) {
	switch cfg.Driver {
	case config.StorageDriverMongo:
		client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		return store.NewMongoStore(repositories.NewReviewRepository(database)), client, nil
	case config.StorageDriverFile:
		path := cfg.FilePath
		if !filepath.IsAbs(path) {
			path = filepath.Join(config.GetBasePath(), path)
		}
		return store.NewFileStore(path), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func openPublisher(cfg config.EventBusConfig) eventbus.Publisher {
	if cfg.Brokers == "" {
		return eventbus.NopPublisher{}
	}
	if err := eventbus.EnsureTopic(cfg.Brokers, cfg.Topic, 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topic: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus, review events disabled: %v", err)
		return eventbus.NopPublisher{}
	}
	return bus
}
