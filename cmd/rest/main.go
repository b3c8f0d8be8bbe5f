package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vehicle-diagnosis-be/internal/bootstrap"
	"vehicle-diagnosis-be/internal/config"
	"vehicle-diagnosis-be/internal/server"
	"vehicle-diagnosis-be/internal/tracer"
	"vehicle-diagnosis-be/pkg/database"
)

func main() {
	// 0. Load Configuration
	cfg := config.Load()

	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap container: %v", err)
	}
	defer container.Close()

	// 4. Build the similarity index; the API stays up without it and reports it in /health
	if n, err := container.ReindexService.Rebuild(ctx); err != nil {
		log.Printf("[WARN] Initial index build failed: %v", err)
	} else {
		log.Printf("[INFO] Indexed %d catalog problems", n)
	}

	// 5. Start Background Services
	if err := container.ReindexService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
