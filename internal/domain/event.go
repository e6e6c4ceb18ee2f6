package domain

import "time"

// EventType identifies what kind of chat interaction an event records.
type EventType string

const (
	EventMessageSent      EventType = "message_sent"
	EventResponseReceived EventType = "response_received"
	EventError            EventType = "error"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventMessageSent, EventResponseReceived, EventError:
		return true
	}
	return false
}

// Category is the topic classification assigned to an assistant response.
type Category string

const (
	CategoryMedical    Category = "medical"
	CategoryMedication Category = "medication"
	CategoryEmergency  Category = "emergency"
	CategoryPharmacy   Category = "pharmacy"
	CategoryGeneral    Category = "general"

	// CategoryError marks the fallback assessment produced when the
	// assistant call itself failed.
	CategoryError Category = "error"
)

// MessageSent is the payload of a message_sent event.
type MessageSent struct {
	MessageLength int `ch:"message_length"`
}

// ResponseReceived is the payload of a response_received event.
type ResponseReceived struct {
	ResponseTimeMs int64    `ch:"response_time_ms"`
	Confidence     float64  `ch:"confidence"`
	Category       Category `ch:"category"`
	ContentLength  int      `ch:"content_length"`
}

// ErrorInfo is the payload of an error event.
type ErrorInfo struct {
	Message string `ch:"error_message"`
}

// Event represents one immutable chat interaction fact. Exactly one payload
// pointer is set, matching EventType; events are never mutated after ingest.
type Event struct {
	EventID        string    `ch:"event_id"`
	UserID         string    `ch:"user_id"`
	ConversationID string    `ch:"conversation_id"`
	SessionID      string    `ch:"session_id"`
	EventType      EventType `ch:"event_type"`
	IPAddress      string    `ch:"ip_address"`
	UserAgent      string    `ch:"user_agent"`
	CreatedAt      time.Time `ch:"created_at"`
	Version        uint64    `ch:"version"`

	MessageSent      *MessageSent
	ResponseReceived *ResponseReceived
	ErrorInfo        *ErrorInfo
}
