package notification

import (
	"dockhub/infras/otel"
	"dockhub/internal/domains/notification/model/dto"
	"dockhub/internal/domains/notification/service"
	"dockhub/shared/constant"
	"dockhub/shared/validator"
	"dockhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/email", handler.SendEmail)
		routerGroup.Post("/sms", handler.SendSMS)
	})
}

// SendEmail renders and sends a templated email.
// @Summary Send an email notification
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Email"
// @Success 200 {object} response.Data[dto.DispatchResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/notifications/email [post]
// @Security BearerAuth
func (handler *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEmail")
	defer scope.End()

	req := dto.SendEmailRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Dispatch(ctx, req.ToModel())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send email")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendSMS renders and sends a templated text message.
// @Summary Send an SMS notification
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendSMSRequest true "SMS"
// @Success 200 {object} response.Data[dto.DispatchResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/notifications/sms [post]
// @Security BearerAuth
func (handler *Handler) SendSMS(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendSMS")
	defer scope.End()

	req := dto.SendSMSRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Dispatch(ctx, req.ToModel())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send sms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
