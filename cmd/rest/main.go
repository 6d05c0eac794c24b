package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mindful-campus-be/internal/bootstrap"
	"mindful-campus-be/internal/config"
	"mindful-campus-be/internal/model"
	"mindful-campus-be/internal/pkg/logger"
	"mindful-campus-be/internal/server"
	"mindful-campus-be/internal/tracer"
	"mindful-campus-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database; schema creation is idempotent
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to database: %v", err)
	}
	if err := database.Migrate(gormDB, model.All()...); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	// 5. Start Background Services
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("MAIN", "Booking consumer failed to start", map[string]interface{}{"error": err})
	}

	// 6. Run Server until a signal arrives
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		sysLogger.Info("MAIN", "Shutting down", nil)
		if err := srv.Shutdown(); err != nil {
			sysLogger.Error("MAIN", "Server shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	if err := srv.Run(); err != nil {
		sysLogger.Error("MAIN", "Server stopped", map[string]interface{}{"error": err})
	}
}
