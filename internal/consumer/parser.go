package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/almonzeir/sudannnnn/internal/domain"
	"github.com/almonzeir/sudannnnn/internal/queue"
)

// JSONEventParser implements MessageParser for the JSON event wire format.
// Messages without a session id or with an unknown event type are rejected
// here so they never reach the repository.
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse parses a JSON message body into an Event
func (p *JSONEventParser) Parse(body []byte) (*domain.Event, error) {
	var msg queue.EventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	event, err := msg.Event()
	if err != nil {
		return nil, fmt.Errorf("invalid event message: %w", err)
	}

	return event, nil
}
