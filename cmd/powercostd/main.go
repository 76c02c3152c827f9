package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"power-cost-backend/config"
	"power-cost-backend/internal/api"
	"power-cost-backend/internal/db"
	"power-cost-backend/internal/publisher"
	"power-cost-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "powercost ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)

	var sender publisher.MessageSender
	if cfg.MQTT.Enabled {
		mqttSender, err := publisher.NewMQTTSender(cfg.MQTT)
		if err != nil {
			logger.Fatalf("failed to connect to MQTT broker: %v", err)
		}
		defer mqttSender.Close()
		sender = mqttSender
		logger.Printf("publishing estimates to %s under %q", cfg.MQTT.Broker, cfg.MQTT.TopicPrefix)
	} else {
		logger.Println("MQTT publishing is disabled")
	}

	workerPool := publisher.NewWorkerPool(cfg.WorkerPool.Size, cfg.WorkerPool.Queue, sender, cfg.MQTT.TopicPrefix, cfg.MQTT.QoS)
	workerPool.Start(ctx)

	router := api.NewRouter(appStore, cfg, workerPool)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
