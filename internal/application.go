package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/config"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/service"
	"github.com/rocketscienceinc/tictactoe-hashes/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - publishes the winning hash index and serves it over HTTP.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	hashRepo := repository.NewHashRepository(redisStorage)
	indexService := service.NewIndexService(logger, hashRepo, conf.Workers)

	if _, err = indexService.Publish(ctx); err != nil {
		return fmt.Errorf("could not publish winning hashes: %w", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(logger, indexService)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
