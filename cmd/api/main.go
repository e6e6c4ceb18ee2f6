package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/docs"
	"github.com/almonzeir/sudannnnn/internal/config"
	"github.com/almonzeir/sudannnnn/internal/handler"
	"github.com/almonzeir/sudannnnn/internal/llm"
	"github.com/almonzeir/sudannnnn/internal/logger"
	"github.com/almonzeir/sudannnnn/internal/queue/sqs"
	"github.com/almonzeir/sudannnnn/internal/repository/clickhouse"
	"github.com/almonzeir/sudannnnn/internal/service"
)

// @title Dar Meds Chat Telemetry API
// @version 1.0
// @description Chat assistant with response quality scoring and interaction telemetry
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	repo := clickhouse.NewRepository(clickhouseClient, log)

	telemetryService := service.NewTelemetryService(sqsClient, repo, log)

	responder := llm.NewGeminiClient(cfg.Gemini, log)
	chatService := service.NewChatService(telemetryService, responder, log)

	h := handler.NewHandler(chatService, telemetryService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
