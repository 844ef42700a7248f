package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TimeTrackGo/config"
	"TimeTrackGo/middleware"
	"TimeTrackGo/routes"
	"TimeTrackGo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Logging
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	// Configuration
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	utils.InitJWT(conf.JWTSecret)

	// Database
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("starting server on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
