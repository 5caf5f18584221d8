package service

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"dockhub/config"
	"dockhub/infras/kafka"
	"dockhub/infras/otel"
	"dockhub/internal/domains/realtime/model"
	"dockhub/shared/constant"
	"dockhub/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Publisher interface {
	Publish(ctx context.Context, event model.ChangeEvent) error
}

type publisherImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func NewPublisher(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// Publish writes the event to the change feed keyed by record id so one record stays on one partition.
func (p *publisherImpl) Publish(ctx context.Context, event model.ChangeEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"table": event.Table,
		"type":  string(event.Type),
	})

	err = p.kafka.SendMessages(ctx, p.cfg.Kafka.Topics.ChangeFeed, kafka.Message{Key: event.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("table", event.Table).Str("id", event.ID).Msg("failed to publish change event")

		return fmt.Errorf("failed to publish change event: %w", err)
	}

	return nil
}

// Emit builds and publishes an event in the background. Publishing never fails the caller.
func Emit(ctx context.Context, publisher Publisher, table string, eventType model.EventType, id, action string, row any) {
	event, err := model.NewChangeEvent(table, eventType, id, action, row, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("table", table).Str("id", id).Msg("failed to build change event")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, event); err != nil {
			log.Warn().Err(err).Str("table", table).Str("id", id).Msg("change event dropped")
		}
	}()
}
