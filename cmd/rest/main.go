package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wedding-portal-be/internal/bootstrap"
	"wedding-portal-be/internal/config"
	"wedding-portal-be/internal/server"
	"wedding-portal-be/internal/tracer"
	"wedding-portal-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 4. Tracer
	shutdownTracer := tracer.InitTracer(cfg.App, container.Logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := container.ConsumerService.Consume(ctx); err != nil {
			container.Logger.Error("CONSUMER", "Consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	if err := srv.Run(); err != nil {
		container.Logger.Error("SERVER", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
