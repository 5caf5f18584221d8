package dto

import (
	"dockhub/internal/domains/notification/model"
)

type SendEmailRequest struct {
	To      string            `json:"to"      validate:"required,email"`
	Type    string            `json:"type"    validate:"required,oneof=checkin dock_assignment status_change"`
	Payload map[string]string `json:"payload" validate:"omitempty,dive,max=200"`
}

func (r *SendEmailRequest) ToModel() model.Notification {
	return model.Notification{
		Type:        model.Type(r.Type),
		Channel:     model.ChannelEmail,
		Destination: r.To,
		Payload:     r.Payload,
	}
}

type SendSMSRequest struct {
	To      string            `json:"to"      validate:"required,phone"`
	Type    string            `json:"type"    validate:"required,oneof=checkin dock_assignment status_change"`
	Payload map[string]string `json:"payload" validate:"omitempty,dive,max=200"`
}

func (r *SendSMSRequest) ToModel() model.Notification {
	return model.Notification{
		Type:        model.Type(r.Type),
		Channel:     model.ChannelSMS,
		Destination: r.To,
		Payload:     r.Payload,
	}
}

type DispatchResponse struct {
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}
