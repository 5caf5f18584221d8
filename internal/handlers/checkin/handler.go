package checkin

import (
	"dockhub/infras/otel"
	"dockhub/internal/domains/checkin/model/dto"
	"dockhub/internal/domains/checkin/service"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/validator"
	"dockhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/check-ins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCheckIn)
		routerGroup.Get("/", handler.GetCheckIns)
		routerGroup.Get("/{id}", handler.GetCheckInByID)
		routerGroup.Patch("/{id}", handler.UpdateCheckIn)
		routerGroup.Delete("/{id}", handler.DeleteCheckIn)
		routerGroup.Post("/{id}/assign-dock", handler.AssignDock)
		routerGroup.Post("/{id}/status", handler.ChangeStatus)
	})
}

// CreateCheckIn records a driver self check-in. No account is required.
// @Summary Driver check-in
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckInRequest true "Check-in"
// @Success 201 {object} response.Data[dto.CheckInResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins [post]
func (handler *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckIn")
	defer scope.End()

	req := dto.CreateCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create check-in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCheckIns lists check-ins.
// @Summary List check-ins
// @Tags CheckIn
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Comma separated statuses"
// @Param dock_number query string false "Dock number or Ramp"
// @Param load_type query string false "inbound or outbound"
// @Param date query string false "Facility day YYYY-MM-DD"
// @Param reference_number query string false "Reference number"
// @Success 200 {object} response.Data[dto.GetCheckInsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := dto.Filter{}
	filter.FromRequest(r)

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-ins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCheckInByID returns one check-in.
// @Summary Get a check-in
// @Tags CheckIn
// @Produce json
// @Param id path string true "Check-in ID"
// @Success 200 {object} response.Data[dto.CheckInResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCheckInByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckInByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get check-in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateCheckIn corrects descriptive fields. Last writer wins.
// @Summary Update a check-in
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID"
// @Param request body dto.UpdateCheckInRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.CheckInResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckIn")
	defer scope.End()

	req := dto.UpdateCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update check-in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteCheckIn removes a check-in.
// @Summary Delete a check-in
// @Tags CheckIn
// @Produce json
// @Param id path string true "Check-in ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckIn")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete check-in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in deleted successfully")

	response.WithMessage(w, http.StatusOK, "Check-in deleted successfully")
}

// AssignDock puts a check-in on a dock. Conflicts come back as warnings.
// @Summary Assign a dock
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID"
// @Param request body dto.AssignDockRequest true "Dock assignment"
// @Success 200 {object} response.Data[dto.AssignDockResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins/{id}/assign-dock [post]
// @Security BearerAuth
func (handler *Handler) AssignDock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignDock")
	defer scope.End()

	req := dto.AssignDockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AssignDock(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign dock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangeStatus moves a check-in into a terminal status.
// @Summary Change check-in status
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID"
// @Param request body dto.ChangeStatusRequest true "Status change"
// @Success 200 {object} response.Data[dto.ChangeStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/check-ins/{id}/status [post]
// @Security BearerAuth
func (handler *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeStatus")
	defer scope.End()

	req := dto.ChangeStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChangeStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change check-in status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
