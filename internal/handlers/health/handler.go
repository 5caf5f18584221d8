package health

import (
	"context"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	"dockhub/shared/constant"
	"dockhub/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db    *postgres.Connection
	redis *redis.Client
	otel  otel.Otel
}

func New(db *postgres.Connection, redis *redis.Client, otel otel.Otel) Handler {
	return Handler{
		db:    db,
		redis: redis,
		otel:  otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

type status struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Health pings the write pool and redis.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	res := status{Postgres: "ok", Redis: "ok"}
	healthy := true

	if err := h.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres health check failed")

		res.Postgres = err.Error()
		healthy = false
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis health check failed")

		res.Redis = err.Error()
		healthy = false
	}

	if !healthy {
		scope.AddEvent("unhealthy")
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
