package realtime

import (
	"dockhub/config"
	"dockhub/infras/otel"
	"dockhub/internal/domains/realtime/model"
	"dockhub/internal/domains/realtime/service"
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"dockhub/transport/http/response"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamTable = "table"
	queryParamEvent = "event"

	streamEventChange = "change"

	defaultPingInterval = 15 * time.Second
)

type Handler struct {
	hub  service.Hub
	cfg  *config.Config
	otel otel.Otel
}

func New(hub service.Hub, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		hub:  hub,
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/realtime", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Stream)
		routerGroup.Get("/snapshot", handler.Snapshot)
	})
}

func (handler *Handler) pingInterval() time.Duration {
	if handler.cfg.Realtime.PingSeconds <= 0 {
		return defaultPingInterval
	}

	return time.Duration(handler.cfg.Realtime.PingSeconds) * time.Second
}

func filterFromRequest(r *http.Request) (model.Filter, error) {
	query := r.URL.Query()

	filter := model.Filter{
		Table: query.Get(queryParamTable),
		Event: model.EventType(query.Get(queryParamEvent)),
	}

	if filter.Table != "" && filter.Table != constant.Asterix && !slices.Contains(model.Tables, filter.Table) {
		return filter, failure.BadRequestFromString(fmt.Sprintf("unknown table %q", filter.Table)) //nolint:wrapcheck
	}

	switch filter.Event {
	case "", model.EventAll, model.EventInsert, model.EventUpdate, model.EventDelete:
	default:
		return filter, failure.BadRequestFromString(fmt.Sprintf("unknown event %q", filter.Event)) //nolint:wrapcheck
	}

	return filter, nil
}

// Stream pushes the current snapshot and then every matching change as Server-Sent Events.
// @Summary Subscribe to the change feed
// @Tags Realtime
// @Produce text/event-stream
// @Param table query string false "check_ins, appointments, dock_states, dock_blocks or *"
// @Param event query string false "insert, update, delete or *"
// @Param access_token query string false "Access token for clients that cannot set headers"
// @Success 200 {object} model.ChangeEvent
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/realtime [get]
// @Security BearerAuth
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stream")
	defer scope.End()

	filter, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	sub, err := handler.hub.Subscribe(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe to change feed")

		response.WithError(w, failure.Unavailable(err.Error()))

		return
	}
	defer handler.hub.Unsubscribe(sub)

	stream, err := response.NewStream(w)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open event stream")

		response.WithError(w, failure.InternalError(err))

		return
	}

	scope.SetAttributes(map[string]any{
		"subscriber": sub.ID,
		"table":      filter.Table,
		"event":      string(filter.Event),
	})

	log.Info().Str("subscriber", sub.ID).Str("table", filter.Table).Str("event", string(filter.Event)).Msg("realtime stream opened")

	ticker := time.NewTicker(handler.pingInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("subscriber", sub.ID).Msg("realtime stream closed by client")

			return
		case <-ticker.C:
			if err = stream.Ping(); err != nil {
				log.Warn().Err(err).Str("subscriber", sub.ID).Msg("failed to ping realtime stream")

				return
			}
		case event, ok := <-sub.Events:
			if !ok {
				log.Info().Str("subscriber", sub.ID).Msg("realtime stream closed by hub")

				return
			}

			if err = stream.Send(streamEventChange, event.ID, event); err != nil {
				log.Warn().Err(err).Str("subscriber", sub.ID).Msg("failed to write realtime event")

				return
			}
		}
	}
}

// Snapshot returns the rows the hub currently holds, as insert events.
// @Summary Current change feed snapshot
// @Tags Realtime
// @Produce json
// @Param table query string false "check_ins, appointments, dock_states, dock_blocks or *"
// @Success 200 {object} response.Data[[]model.ChangeEvent]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/realtime/snapshot [get]
// @Security BearerAuth
func (handler *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Snapshot")
	defer scope.End()

	filter, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	events, err := handler.hub.Snapshot(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read change feed snapshot")

		response.WithError(w, failure.Unavailable(err.Error()))

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}
