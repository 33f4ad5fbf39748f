package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/popdriving/sessionbook/internal/common/clock"
	"github.com/popdriving/sessionbook/internal/common/identity"
	"github.com/popdriving/sessionbook/internal/config"
	"github.com/popdriving/sessionbook/internal/handlers/discord"
	sessionRepo "github.com/popdriving/sessionbook/internal/repositories/session"
	sessionService "github.com/popdriving/sessionbook/internal/services/session"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the session store: Redis when configured, otherwise
	// the JSON file store.
	var repo sessionRepo.Repository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		repo, err = sessionRepo.NewRedis(&sessionRepo.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create session repository: %v", err)
		}

		log.Printf("Using Redis session store at %s", cfg.RedisAddr)
	} else {
		repo, err = sessionRepo.NewFile(&sessionRepo.FileConfig{
			Path: cfg.SessionsFile,
		})
		if err != nil {
			log.Fatalf("Failed to create session repository: %v", err)
		}

		log.Printf("Using file session store at %s", cfg.SessionsFile)
	}

	// Initialize the session service
	sessionSvc, err := sessionService.New(&sessionService.Config{
		Repo:  repo,
		IDGen: identity.New(clock.New()),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          cfg.Token,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		SessionService: sessionSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Serve the keep-alive endpoint for uptime monitors
	go func() {
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "Discord Bot is running!")
		})
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Printf("Keep-alive endpoint listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("Keep-alive server stopped: %v", err)
		}
	}()

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
