package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/notify"
	"dockhub/infras/otel"
	"dockhub/internal/domains/notification/model"
	"dockhub/internal/domains/notification/model/dto"
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"dockhub/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Dispatch(ctx context.Context, notification model.Notification) (dto.DispatchResponse, error)
	DispatchAsync(ctx context.Context, notification model.Notification)
}

type serviceImpl struct {
	email notify.Email
	sms   notify.SMS
	otel  otel.Otel
}

func New(email notify.Email, sms notify.SMS, otel otel.Otel) Notification {
	return &serviceImpl{
		email: email,
		sms:   sms,
		otel:  otel,
	}
}

// Dispatch sends once. There is no retry or queue, callers decide what a failure means.
func (s *serviceImpl) Dispatch(ctx context.Context, notification model.Notification) (res dto.DispatchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"type":    string(notification.Type),
		"channel": string(notification.Channel),
	})

	message, err := Render(notification)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res.Channel = string(notification.Channel)

	switch notification.Channel {
	case model.ChannelEmail:
		if err = validator.ValidateVar(notification.Destination, "required,email"); err != nil {
			return res, err //nolint:wrapcheck
		}

		res.MessageID, err = s.email.SendEmail(ctx, notification.Destination, message.Subject, message.Body)
	case model.ChannelSMS:
		if err = validator.ValidateVar(notification.Destination, "required,phone"); err != nil {
			return res, err //nolint:wrapcheck
		}

		res.MessageID, err = s.sms.SendSMS(ctx, toE164(notification.Destination), message.Body)
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown channel %q", notification.Channel)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("type", string(notification.Type)).Str("channel", res.Channel).Msg("failed to dispatch notification")

		return res, failure.InternalError(fmt.Errorf("notification provider: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("type", string(notification.Type)).Str("channel", res.Channel).Str("message_id", res.MessageID).Msg("notification sent")

	return res, nil
}

// DispatchAsync sends in the background. Failures are logged and never reach the caller.
func (s *serviceImpl) DispatchAsync(ctx context.Context, notification model.Notification) {
	go func() {
		c := context.WithoutCancel(ctx)

		if _, err := s.Dispatch(c, notification); err != nil {
			log.Warn().Err(err).Str("type", string(notification.Type)).Msg("background notification failed")
		}
	}()
}

func toE164(phone string) string {
	return "+1" + validator.NormalizePhone(phone)
}
