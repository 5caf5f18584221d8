package service

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=../mocks/hub_mock.go -package=mocks

import (
	"context"
	"dockhub/config"
	"dockhub/infras/kafka"
	"dockhub/infras/otel"
	checkInModel "dockhub/internal/domains/checkin/model"
	checkInDto "dockhub/internal/domains/checkin/model/dto"
	checkInRepo "dockhub/internal/domains/checkin/repository"
	"dockhub/internal/domains/realtime/model"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	subscriberBuffer = 64
	tombstoneTTL     = 15 * time.Minute
)

var ErrHubStopped = errors.New("realtime hub is not running")

// Subscription receives matching events until it is cancelled or the hub stops.
type Subscription struct {
	ID     string
	Filter model.Filter
	Events <-chan model.ChangeEvent
	events chan model.ChangeEvent
}

type subscribeRequest struct {
	filter model.Filter
	reply  chan *Subscription
}

type snapshotRequest struct {
	filter model.Filter
	reply  chan []model.ChangeEvent
}

type Hub interface {
	Run(ctx context.Context) error
	Subscribe(ctx context.Context, filter model.Filter) (*Subscription, error)
	Unsubscribe(sub *Subscription)
	Snapshot(ctx context.Context, filter model.Filter) ([]model.ChangeEvent, error)
}

// hubImpl owns its state from a single goroutine. Every mutation arrives as a message.
type hubImpl struct {
	kafka       kafka.Client
	checkInRepo checkInRepo.CheckIn
	cfg         *config.Config
	otel        otel.Otel

	incoming    chan model.ChangeEvent
	subscribe   chan subscribeRequest
	unsubscribe chan *Subscription
	snapshot    chan snapshotRequest
	done        chan struct{}

	rows        map[string]model.ChangeEvent
	tombstones  map[string]time.Time
	subscribers map[string]*Subscription
}

func NewHub(kafka kafka.Client, checkInRepo checkInRepo.CheckIn, cfg *config.Config, otel otel.Otel) Hub {
	return &hubImpl{
		kafka:       kafka,
		checkInRepo: checkInRepo,
		cfg:         cfg,
		otel:        otel,
		incoming:    make(chan model.ChangeEvent, subscriberBuffer),
		subscribe:   make(chan subscribeRequest),
		unsubscribe: make(chan *Subscription),
		snapshot:    make(chan snapshotRequest),
		done:        make(chan struct{}),
		rows:        map[string]model.ChangeEvent{},
		tombstones:  map[string]time.Time{},
		subscribers: map[string]*Subscription{},
	}
}

// Run seeds active check-ins, starts the change feed consumer and reconciles until ctx is done.
func (h *hubImpl) Run(ctx context.Context) error {
	defer close(h.done)

	if err := h.seed(ctx); err != nil {
		log.Error().Err(err).Msg("failed to seed realtime hub, starting empty")
	}

	// every instance must see every event, so each one joins its own consumer group
	group := fmt.Sprintf("%s-%s", h.cfg.Kafka.ConsumerGroup, uuid.NewString())

	go func() {
		err := h.kafka.Consume(ctx, group, h.cfg.Kafka.Topics.ChangeFeed, h.handleMessage)
		if err != nil {
			log.Error().Err(err).Msg("change feed consumer stopped")
		}
	}()

	h.loop(ctx)

	return nil
}

func (h *hubImpl) seed(ctx context.Context) (err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	statuses := make([]string, len(checkInModel.ActiveStatuses))
	for i, status := range checkInModel.ActiveStatuses {
		statuses[i] = string(status)
	}

	checkIns, err := h.checkInRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: checkInModel.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: checkInModel.TableName},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to load active check-ins: %w", err)
	}

	for _, checkIn := range checkIns {
		var row checkInDto.CheckInResponse
		row.FromModel(checkIn)

		event, err := model.NewChangeEvent(model.TableCheckIns, model.EventInsert, checkIn.ID, "", row, checkIn.ModifiedAt)
		if err != nil {
			return err
		}

		h.apply(event)
	}

	log.Info().Int("check_ins", len(checkIns)).Msg("realtime hub seeded")

	return nil
}

func (h *hubImpl) handleMessage(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.Decode[model.ChangeEvent](msg)
	if err != nil {
		// a malformed event can never be processed, so it is acknowledged and dropped
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping malformed change event")

		return nil
	}

	select {
	case h.incoming <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *hubImpl) loop(ctx context.Context) {
	pruner := time.NewTicker(tombstoneTTL)
	defer pruner.Stop()

	for {
		select {
		case now := <-pruner.C:
			h.prune(now)
		case <-ctx.Done():
			for id, sub := range h.subscribers {
				close(sub.events)
				delete(h.subscribers, id)
			}

			return
		case event := <-h.incoming:
			if h.apply(event) {
				h.broadcast(event)
			}
		case req := <-h.subscribe:
			req.reply <- h.addSubscriber(req.filter)
		case sub := <-h.unsubscribe:
			if _, ok := h.subscribers[sub.ID]; ok {
				close(sub.events)
				delete(h.subscribers, sub.ID)
			}
		case req := <-h.snapshot:
			req.reply <- h.matching(req.filter)
		}
	}
}

// apply merges the event into state and reports whether it is newer than what the hub already holds.
// Events are full-row snapshots, so replaying one is harmless. Only active check-ins are kept, the same
// set seed loads, so the snapshot looks the same before and after a restart. Other tables are relayed only.
func (h *hubImpl) apply(event model.ChangeEvent) bool {
	if event.Table == "" || event.ID == "" {
		return false
	}

	if event.Table != model.TableCheckIns {
		return true
	}

	if retiredAt, ok := h.tombstones[event.ID]; ok && event.OccurredAt.Before(retiredAt) {
		return false
	}

	if current, ok := h.rows[event.ID]; ok && event.OccurredAt.Before(current.OccurredAt) {
		return false
	}

	if event.Type == model.EventDelete || !activeRow(event) {
		delete(h.rows, event.ID)
		h.tombstones[event.ID] = event.OccurredAt

		return true
	}

	delete(h.tombstones, event.ID)
	h.rows[event.ID] = event

	return true
}

func activeRow(event model.ChangeEvent) bool {
	var row struct {
		Status checkInModel.Status `json:"status"`
	}

	if err := json.Unmarshal(event.Row, &row); err != nil {
		log.Warn().Err(err).Str("id", event.ID).Msg("check-in event without a readable status")

		return false
	}

	return row.Status.IsActive()
}

// prune forgets tombstones older than tombstoneTTL. Events that late are stale beyond repair anyway.
func (h *hubImpl) prune(now time.Time) {
	for id, retiredAt := range h.tombstones {
		if now.Sub(retiredAt) > tombstoneTTL {
			delete(h.tombstones, id)
		}
	}
}

func (h *hubImpl) broadcast(event model.ChangeEvent) {
	for _, sub := range h.subscribers {
		if !sub.Filter.Matches(event) {
			continue
		}

		select {
		case sub.events <- event:
		default:
			log.Warn().Str("subscriber", sub.ID).Str("table", event.Table).Msg("subscriber is lagging, event dropped")
		}
	}
}

func (h *hubImpl) matching(filter model.Filter) []model.ChangeEvent {
	events := []model.ChangeEvent{}

	for _, event := range h.rows {
		// snapshot rows are current state, so only the table part of the filter applies
		if (model.Filter{Table: filter.Table}).Matches(event) {
			events = append(events, event)
		}
	}

	return events
}

func (h *hubImpl) addSubscriber(filter model.Filter) *Subscription {
	snapshot := h.matching(filter)
	events := make(chan model.ChangeEvent, len(snapshot)+subscriberBuffer)

	for _, event := range snapshot {
		events <- event
	}

	sub := &Subscription{
		ID:     uuid.NewString(),
		Filter: filter,
		Events: events,
		events: events,
	}

	h.subscribers[sub.ID] = sub

	log.Debug().Str("subscriber", sub.ID).Int("snapshot", len(snapshot)).Msg("realtime subscriber added")

	return sub
}

func (h *hubImpl) Subscribe(ctx context.Context, filter model.Filter) (*Subscription, error) {
	reply := make(chan *Subscription, 1)

	select {
	case h.subscribe <- subscribeRequest{filter: filter, reply: reply}:
	case <-h.done:
		return nil, ErrHubStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return <-reply, nil
}

func (h *hubImpl) Unsubscribe(sub *Subscription) {
	select {
	case h.unsubscribe <- sub:
	case <-h.done:
	}
}

func (h *hubImpl) Snapshot(ctx context.Context, filter model.Filter) ([]model.ChangeEvent, error) {
	reply := make(chan []model.ChangeEvent, 1)

	select {
	case h.snapshot <- snapshotRequest{filter: filter, reply: reply}:
	case <-h.done:
		return nil, ErrHubStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return <-reply, nil
}
