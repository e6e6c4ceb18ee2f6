package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"message is required"`
}

// ResponseMetadata annotates one assistant reply
type ResponseMetadata struct {
	Confidence     float64 `json:"confidence" example:"0.9"`
	Category       string  `json:"category" example:"medication"`
	ResponseTimeMs int64   `json:"responseTime" example:"1450"`
}

// SendMessageResponse represents the assistant reply for one chat turn
type SendMessageResponse struct {
	Response       string           `json:"response"`
	ConversationID string           `json:"conversationId"`
	SessionID      string           `json:"sessionId"`
	Metadata       ResponseMetadata `json:"metadata"`
}
