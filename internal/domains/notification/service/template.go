package service

import (
	"dockhub/internal/domains/notification/model"
	"fmt"
	"strings"
)

func value(payload map[string]string, key, fallback string) string {
	if v := strings.TrimSpace(payload[key]); v != "" {
		return v
	}

	return fallback
}

// Render produces the subject and body for a notification type.
func Render(notification model.Notification) (model.Message, error) {
	payload := notification.Payload
	driver := value(payload, model.PayloadDriverName, "Driver")
	reference := value(payload, model.PayloadReferenceNumber, "-")

	switch notification.Type {
	case model.TypeCheckIn:
		return model.Message{
			Subject: "Check-in received " + reference,
			Body: fmt.Sprintf("Hi %s, your check-in for %s was received. Please wait in your truck, we will text you your dock.",
				driver, reference),
		}, nil
	case model.TypeDockAssignment:
		dock := value(payload, model.PayloadDockNumber, "")
		if dock == "" {
			return model.Message{}, fmt.Errorf("dock_assignment requires %s", model.PayloadDockNumber)
		}

		return model.Message{
			Subject: fmt.Sprintf("Dock %s assigned", dock),
			Body:    fmt.Sprintf("Hi %s, please proceed to dock %s for %s.", driver, dock, reference),
		}, nil
	case model.TypeStatusChange:
		status := value(payload, model.PayloadStatus, "")
		if status == "" {
			return model.Message{}, fmt.Errorf("status_change requires %s", model.PayloadStatus)
		}

		readable := strings.ReplaceAll(status, "_", " ")

		return model.Message{
			Subject: fmt.Sprintf("Load %s %s", reference, readable),
			Body:    fmt.Sprintf("Hi %s, the status of %s is now %s.", driver, reference, readable),
		}, nil
	default:
		return model.Message{}, fmt.Errorf("unknown notification type %q", notification.Type)
	}
}
