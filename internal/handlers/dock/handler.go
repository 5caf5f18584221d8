package dock

import (
	"dockhub/infras/otel"
	"dockhub/internal/domains/dock/model/dto"
	"dockhub/internal/domains/dock/service"
	"dockhub/shared/constant"
	"dockhub/shared/validator"
	"dockhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dock
	otel    otel.Otel
}

func New(service service.Dock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/docks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBoard)
		routerGroup.Get("/blocks", handler.GetBlocks)
		routerGroup.Get("/cycles", handler.GetCycles)
		routerGroup.Get("/{number}", handler.GetDock)
		routerGroup.Get("/{number}/assignment-check", handler.CheckAssignment)
		routerGroup.Put("/{number}/block", handler.BlockDock)
		routerGroup.Delete("/{number}/block", handler.UnblockDock)
		routerGroup.Post("/{number}/claim", handler.ClaimDock)
		routerGroup.Post("/{number}/advance", handler.AdvanceDock)
		routerGroup.Post("/{number}/release", handler.ReleaseDock)
	})
}

// GetBoard returns every dock with its derived occupancy.
// @Summary Dock board
// @Description Classify every dock of the facility from the active check-ins and blocks.
// @Tags Dock
// @Produce json
// @Success 200 {object} response.Data[dto.BoardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/docks [get]
// @Security BearerAuth
func (handler *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	res, err := handler.service.Board(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dock board")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDock returns a single dock.
// @Summary Get a dock
// @Tags Dock
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Success 200 {object} response.Data[dto.DockStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number} [get]
// @Security BearerAuth
func (handler *Handler) GetDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDock")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckAssignment reports advisory conflicts before a dock is assigned.
// @Summary Check a dock assignment
// @Description Warnings never block the assignment.
// @Tags Dock
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Param check_in_id query string false "Check-in about to be assigned"
// @Success 200 {object} response.Data[dto.AssignmentCheck]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/assignment-check [get]
// @Security BearerAuth
func (handler *Handler) CheckAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAssignment")
	defer scope.End()

	number := chi.URLParam(r, constant.RequestParamNumber)
	checkInID := r.URL.Query().Get("check_in_id")

	res, err := handler.service.CheckAssignment(ctx, number, checkInID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("dock", number).Msg("failed to check dock assignment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// BlockDock takes a dock out of service.
// @Summary Block a dock
// @Tags Dock
// @Accept json
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Param request body dto.BlockRequest true "Block reason"
// @Success 200 {object} response.Data[dto.BlockResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/block [put]
// @Security BearerAuth
func (handler *Handler) BlockDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockDock")
	defer scope.End()

	req := dto.BlockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Block(ctx, chi.URLParam(r, constant.RequestParamNumber), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block dock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dock blocked")

	response.WithJSON(w, http.StatusOK, res)
}

// UnblockDock puts a dock back into service.
// @Summary Unblock a dock
// @Tags Dock
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/block [delete]
// @Security BearerAuth
func (handler *Handler) UnblockDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockDock")
	defer scope.End()

	if err := handler.service.Unblock(ctx, chi.URLParam(r, constant.RequestParamNumber)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock dock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dock unblocked")

	response.WithMessage(w, http.StatusOK, "Dock unblocked successfully")
}

// GetBlocks lists the docks currently out of service.
// @Summary List blocked docks
// @Tags Dock
// @Produce json
// @Success 200 {object} response.Data[[]dto.BlockResponse]
// @Failure 500 {object} response.Error
// @Router /v1/docks/blocks [get]
// @Security BearerAuth
func (handler *Handler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlocks")
	defer scope.End()

	res, err := handler.service.Blocks(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list dock blocks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCycles lists the stored cycle state of every dock.
// @Summary Dock cycle states
// @Tags Dock
// @Produce json
// @Success 200 {object} response.Data[dto.GetCyclesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/docks/cycles [get]
// @Security BearerAuth
func (handler *Handler) GetCycles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCycles")
	defer scope.End()

	res, err := handler.service.Cycles(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list dock cycles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ClaimDock moves an available dock into assigned or loading. Only one concurrent claim wins.
// @Summary Claim a dock
// @Tags Dock
// @Accept json
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Param request body dto.ClaimRequest false "Claim"
// @Success 200 {object} response.Data[dto.DockCycleResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/claim [post]
// @Security BearerAuth
func (handler *Handler) ClaimDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClaimDock")
	defer scope.End()

	req := dto.ClaimRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Claim(ctx, chi.URLParam(r, constant.RequestParamNumber), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to claim dock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AdvanceDock moves an assigned dock into loading.
// @Summary Start loading at a dock
// @Tags Dock
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Success 200 {object} response.Data[dto.DockCycleResponse]
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/advance [post]
// @Security BearerAuth
func (handler *Handler) AdvanceDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceDock")
	defer scope.End()

	res, err := handler.service.Advance(ctx, chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance dock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReleaseDock returns a dock to available.
// @Summary Release a dock
// @Tags Dock
// @Produce json
// @Param number path string true "Dock number or Ramp"
// @Success 200 {object} response.Data[dto.DockCycleResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/docks/{number}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseDock")
	defer scope.End()

	res, err := handler.service.Release(ctx, chi.URLParam(r, constant.RequestParamNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release dock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
