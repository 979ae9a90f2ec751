package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avaldezp/pizzeria-be/internal/api"
	"github.com/avaldezp/pizzeria-be/internal/auth"
	"github.com/avaldezp/pizzeria-be/internal/config"
	"github.com/avaldezp/pizzeria-be/internal/database"
	"github.com/avaldezp/pizzeria-be/internal/logger"
	"github.com/avaldezp/pizzeria-be/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)
	if cfg.UsingFallbackSecret {
		log.Warn().Msg("JWT_SECRET not set; using the insecure local-testing fallback")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up token manager and services
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := services.NewUserService(db)
	clienteService := services.NewClienteService(db)
	proveedorService := services.NewProveedorService(db)
	articuloService := services.NewArticuloService(db)
	empleadoService := services.NewEmpleadoService(db)

	// Set up router
	router := api.NewRouter(tokens, userService, clienteService, proveedorService, articuloService, empleadoService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
