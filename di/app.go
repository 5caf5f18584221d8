package di

import (
	"context"
	"dockhub/config"
	"dockhub/infras/kafka"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	realtimeService "dockhub/internal/domains/realtime/service"
	"dockhub/transport/http"
	"errors"
	"fmt"
	stdHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

// App owns the HTTP server and the background workers that share its lifetime.
type App struct {
	Config *config.Config
	HTTP   *http.HTTP
	Hub    realtimeService.Hub
	Kafka  kafka.Client
	DB     *postgres.Connection
	Otel   otel.Otel

	hubOnce sync.Once
}

// Run serves until SIGINT or SIGTERM, then stops the hub and releases connections.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hubDone := a.startHub(ctx)

	serveErr := a.HTTP.Serve(ctx)

	stop()
	<-hubDone

	return errors.Join(serveErr, a.close())
}

// Handler starts the hub for the process lifetime and returns the routed handler.
func (a *App) Handler() stdHttp.Handler {
	a.startHub(context.Background())

	return a.HTTP.Adaptor()
}

func (a *App) startHub(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	started := false

	a.hubOnce.Do(func() {
		started = true

		go func() {
			defer close(done)

			if err := a.Hub.Run(ctx); err != nil {
				log.Error().Err(err).Msg("realtime hub stopped")
			}
		}()
	})

	if !started {
		close(done)
	}

	return done
}

func (a *App) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var errs []error

	if err := a.Kafka.Close(); err != nil {
		errs = append(errs, fmt.Errorf("kafka: %w", err))
	}

	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("postgres: %w", err))
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("otel: %w", err))
	}

	return errors.Join(errs...)
}
