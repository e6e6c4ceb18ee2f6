package dto

// SendMessageRequest represents an inbound chat turn
type SendMessageRequest struct {
	Message        string `json:"message" binding:"required,max=4000" example:"عندي صداع شديد"`
	ConversationID string `json:"conversation_id" example:"b2f7c9a0-5f1e-4d7b-9c3a-2e8f6d4a1b0c"`
	UserID         string `json:"user_id" example:"user_123"`
}

// TimeframeRequest carries the trailing window for metrics queries
type TimeframeRequest struct {
	TimeframeDays int `form:"timeframe_days" example:"7"`
}

// GetInsightsRequest represents an insights query
type GetInsightsRequest struct {
	UserID        string `form:"user_id" example:"user_123"`
	TimeframeDays int    `form:"timeframe_days" example:"7"`
}
