package service

import (
	"context"

	"github.com/almonzeir/sudannnnn/internal/analytics"
)

// TelemetryServicer defines the interface for telemetry operations
type TelemetryServicer interface {
	LogEvent(ctx context.Context, input *EventInput) error
	GetConversationMetrics(ctx context.Context, conversationID string) (*analytics.ConversationMetrics, error)
	GetUserMetrics(ctx context.Context, userID string, timeframeDays int) (*analytics.UserMetrics, error)
	GetSystemMetrics(ctx context.Context, timeframeDays int) (*analytics.SystemMetrics, error)
	GenerateInsights(ctx context.Context, userID string, timeframeDays int) (*analytics.InsightsPayload, error)
}

// ChatServicer defines the interface for chat turn handling
type ChatServicer interface {
	Send(ctx context.Context, input *SendInput) (*SendResult, error)
}
