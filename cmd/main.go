package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"ruyatech/internal/api"
	"ruyatech/internal/auth"
	"ruyatech/internal/client"
	"ruyatech/internal/config"
	"ruyatech/internal/events"
	"ruyatech/internal/i18n"

	console "ruyatech/internal/utils/logger"
)

func main() {
	logger := console.New("ruyatech")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		logger.Info("No .env file found, skipping environment variable loading")
	} else {
		logger.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Message catalog; the built-in English one covers a missing file
	msgs, err := i18n.Load(cfg.I18n.CatalogPath, cfg.I18n.DefaultLocale)
	if err != nil {
		logger.Warn("No message catalog at %s, using built-in messages: %v", cfg.I18n.CatalogPath, err)
		msgs = i18n.Default()
	}

	// Session token store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		Username: cfg.Redis.Username,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("Failed to close redis connection: %v", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	tokens := auth.NewStore(rdb, cfg.JWT.SessionTTL)

	// One shared backend client; each request's token is resolved from its
	// own session via the context.
	backend := client.New(client.Options{
		BaseURL:     cfg.Backend.BaseURL,
		Locale:      cfg.Backend.Locale,
		Credentials: auth.ContextCredentials{Store: tokens},
	})

	registerAuditLog(logger)

	// Initialize API server
	apiServer := api.NewServer(cfg, backend, tokens, msgs)
	go func() {
		logger.Success("API server started")
		if err := apiServer.Start(); err != nil {
			logger.Error("API server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown API server: %v", err)
	}

	logger.Info("Server shutdown gracefully")
}

// registerAuditLog subscribes to every moderation topic so each decision
// lands in the server log.
func registerAuditLog(logger *console.Logger) {
	topics := []string{
		"ads.publish", "ads.unpublish", "ads.reject", "ads.deleted",
		"posts.publish", "posts.unpublish", "posts.reject", "posts.deleted",
		"members.approve", "members.suspend", "members.reject", "members.deleted",
	}
	for _, topic := range topics {
		topic := topic
		events.On(topic, func(payload interface{}) {
			logger.Info("audit: %s %v", topic, payload)
		})
	}
}
