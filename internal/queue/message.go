package queue

import (
	"fmt"
	"time"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

// EventMessage is the JSON wire format of one event on the queue. The typed
// payload union is flattened; which fields are meaningful follows from
// event_type.
type EventMessage struct {
	EventID        string  `json:"event_id"`
	UserID         string  `json:"user_id,omitempty"`
	ConversationID string  `json:"conversation_id,omitempty"`
	SessionID      string  `json:"session_id"`
	EventType      string  `json:"event_type"`
	MessageLength  int     `json:"message_length,omitempty"`
	ResponseTimeMs int64   `json:"response_time_ms,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
	Category       string  `json:"category,omitempty"`
	ContentLength  int     `json:"content_length,omitempty"`
	ErrorMessage   string  `json:"error_message,omitempty"`
	IPAddress      string  `json:"ip_address,omitempty"`
	UserAgent      string  `json:"user_agent,omitempty"`
	CreatedAtMs    int64   `json:"created_at_ms"`
	Version        uint64  `json:"version,omitempty"`
}

// NewEventMessage flattens a domain event into its wire form.
func NewEventMessage(event *domain.Event) EventMessage {
	msg := EventMessage{
		EventID:        event.EventID,
		UserID:         event.UserID,
		ConversationID: event.ConversationID,
		SessionID:      event.SessionID,
		EventType:      string(event.EventType),
		IPAddress:      event.IPAddress,
		UserAgent:      event.UserAgent,
		CreatedAtMs:    event.CreatedAt.UnixMilli(),
		Version:        event.Version,
	}

	switch {
	case event.MessageSent != nil:
		msg.MessageLength = event.MessageSent.MessageLength
	case event.ResponseReceived != nil:
		msg.ResponseTimeMs = event.ResponseReceived.ResponseTimeMs
		msg.Confidence = event.ResponseReceived.Confidence
		msg.Category = string(event.ResponseReceived.Category)
		msg.ContentLength = event.ResponseReceived.ContentLength
	case event.ErrorInfo != nil:
		msg.ErrorMessage = event.ErrorInfo.Message
	}

	return msg
}

// Event validates the wire message and rebuilds the domain event.
func (m EventMessage) Event() (*domain.Event, error) {
	if m.SessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}

	eventType := domain.EventType(m.EventType)
	if !eventType.Valid() {
		return nil, fmt.Errorf("unknown event_type: %q", m.EventType)
	}

	event := &domain.Event{
		EventID:        m.EventID,
		UserID:         m.UserID,
		ConversationID: m.ConversationID,
		SessionID:      m.SessionID,
		EventType:      eventType,
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
		CreatedAt:      time.UnixMilli(m.CreatedAtMs),
		Version:        m.Version,
	}

	switch eventType {
	case domain.EventMessageSent:
		event.MessageSent = &domain.MessageSent{
			MessageLength: m.MessageLength,
		}
	case domain.EventResponseReceived:
		event.ResponseReceived = &domain.ResponseReceived{
			ResponseTimeMs: m.ResponseTimeMs,
			Confidence:     m.Confidence,
			Category:       domain.Category(m.Category),
			ContentLength:  m.ContentLength,
		}
	case domain.EventError:
		event.ErrorInfo = &domain.ErrorInfo{
			Message: m.ErrorMessage,
		}
	}

	return event, nil
}
