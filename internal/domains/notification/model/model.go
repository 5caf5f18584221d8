package model

type Type string

const (
	TypeCheckIn        Type = "checkin"
	TypeDockAssignment Type = "dock_assignment"
	TypeStatusChange   Type = "status_change"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

const (
	PayloadDriverName      = "driver_name"
	PayloadDockNumber      = "dock_number"
	PayloadStatus          = "status"
	PayloadReferenceNumber = "reference_number"
	PayloadCarrierName     = "carrier_name"
)

// Notification is one message to one destination. Payload feeds the message template.
type Notification struct {
	Type        Type
	Channel     Channel
	Destination string
	Payload     map[string]string
}

// Message is the rendered text of a notification. Subject is unused for SMS.
type Message struct {
	Subject string
	Body    string
}
