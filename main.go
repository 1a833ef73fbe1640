package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gest35bi/config"
	"gest35bi/database"
	"gest35bi/handlers"
	"gest35bi/logger"
	"gest35bi/metrics"
	repository "gest35bi/repositories"
	"gest35bi/routes"
	services "gest35bi/services"
	"gest35bi/views"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.WithError(err).Fatal("failed to load configuration")
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Env)

	if err := run(cfg); err != nil {
		logger.L.WithError(err).Fatal("server stopped with error")
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.L.WithError(err).Error("failed to disconnect from MongoDB")
		}
	}()

	logger.L.WithFields(logger.Fields{
		"database":   cfg.Database.Name,
		"collection": cfg.Database.Collection,
	}).Info("connected to MongoDB")

	database.IsReplicaSet(ctx, client)

	collection := client.Database(cfg.Database.Name).Collection(cfg.Database.Collection)
	if err := database.CreateIndicatorIndexes(ctx, collection); err != nil {
		logger.L.WithError(err).Warn("failed to create indicator indexes")
	}

	renderer, err := views.New()
	if err != nil {
		return err
	}

	indicatorRepo := repository.NewIndicatorRepository(collection)
	indicatorService := services.NewIndicatorService(indicatorRepo)

	handler := routes.Setup(routes.Handlers{
		Indicators: handlers.NewIndicatorHandler(indicatorService, cfg.Server.RequestTimeout),
		Pages:      handlers.NewPageHandler(indicatorService, renderer, cfg.Server.RequestTimeout),
		Health:     handlers.NewHealthHandler(client),
	}, metrics.NewHTTPMetrics())

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.RequestTimeout,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.L.WithField("addr", server.Addr).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	return waitForShutdown(server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal arrives or the server fails, then
// drains in-flight requests within timeout.
func waitForShutdown(server *http.Server, serverErr <-chan error, timeout time.Duration) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logger.L.WithField("signal", sig.String()).Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.L.Info("shutdown complete")
	return nil
}
