package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/analytics"
	"github.com/almonzeir/sudannnnn/internal/domain"
	"github.com/almonzeir/sudannnnn/internal/queue"
	"github.com/almonzeir/sudannnnn/internal/repository"
)

// ErrMissingSessionID is returned when an event arrives without a session id.
// This is the one telemetry failure that is surfaced loudly: it is a
// programmer error in the producing code path, not an infrastructure fault.
var ErrMissingSessionID = errors.New("session id is required")

const (
	defaultUserTimeframeDays   = 30
	defaultSystemTimeframeDays = 7
)

// EventInput describes one interaction event to record. SessionID is
// required; everything else passes through as given.
type EventInput struct {
	UserID         string
	ConversationID string
	SessionID      string
	EventType      domain.EventType
	IPAddress      string
	UserAgent      string

	MessageSent      *domain.MessageSent
	ResponseReceived *domain.ResponseReceived
	ErrorInfo        *domain.ErrorInfo
}

// TelemetryService records interaction events and serves recomputed metrics
// and insights over them.
type TelemetryService struct {
	publisher  queue.EventPublisher
	repository repository.EventRepository
	log        *zap.Logger
}

// NewTelemetryService creates a new telemetry service
func NewTelemetryService(publisher queue.EventPublisher, repo repository.EventRepository, log *zap.Logger) *TelemetryService {
	return &TelemetryService{
		publisher:  publisher,
		repository: repo,
		log:        log,
	}
}

// LogEvent stamps and publishes a single interaction event. Best-effort at
// most once: publish failures are logged and swallowed so telemetry can
// never break the chat flow. The only error returned is a missing session
// id, rejected before any I/O.
func (s *TelemetryService) LogEvent(ctx context.Context, input *EventInput) error {
	if input.SessionID == "" {
		return ErrMissingSessionID
	}

	event := &domain.Event{
		EventID:          uuid.NewString(),
		UserID:           input.UserID,
		ConversationID:   input.ConversationID,
		SessionID:        input.SessionID,
		EventType:        input.EventType,
		IPAddress:        input.IPAddress,
		UserAgent:        input.UserAgent,
		CreatedAt:        time.Now(),
		Version:          uint64(time.Now().UnixNano()),
		MessageSent:      input.MessageSent,
		ResponseReceived: input.ResponseReceived,
		ErrorInfo:        input.ErrorInfo,
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.log.Warn("Dropping interaction event after publish failure",
			zap.String("event_type", string(event.EventType)),
			zap.String("session_id", event.SessionID),
			zap.Error(err))
	}

	return nil
}

// GetConversationMetrics recomputes metrics for one conversation. A nil
// result means the event store was unavailable, never "zero activity".
func (s *TelemetryService) GetConversationMetrics(ctx context.Context, conversationID string) (*analytics.ConversationMetrics, error) {
	events, err := s.repository.QueryEvents(ctx, repository.EventFilter{
		ConversationID: conversationID,
	})
	if err != nil {
		s.log.Error("Failed to query conversation events",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
		return nil, err
	}

	metrics := analytics.AggregateConversation(events)
	return &metrics, nil
}

// GetUserMetrics recomputes metrics for one user over the trailing window of
// timeframeDays days (defaults to 30 when not positive).
func (s *TelemetryService) GetUserMetrics(ctx context.Context, userID string, timeframeDays int) (*analytics.UserMetrics, error) {
	if timeframeDays <= 0 {
		timeframeDays = defaultUserTimeframeDays
	}

	events, err := s.repository.QueryEvents(ctx, repository.EventFilter{
		UserID: userID,
		Since:  windowStart(timeframeDays),
	})
	if err != nil {
		s.log.Error("Failed to query user events",
			zap.String("user_id", userID),
			zap.Int("timeframe_days", timeframeDays),
			zap.Error(err))
		return nil, err
	}

	metrics := analytics.AggregateUser(events)
	return &metrics, nil
}

// GetSystemMetrics recomputes system-wide metrics over the trailing window
// of timeframeDays days (defaults to 7 when not positive).
func (s *TelemetryService) GetSystemMetrics(ctx context.Context, timeframeDays int) (*analytics.SystemMetrics, error) {
	if timeframeDays <= 0 {
		timeframeDays = defaultSystemTimeframeDays
	}

	events, err := s.repository.QueryEvents(ctx, repository.EventFilter{
		Since: windowStart(timeframeDays),
	})
	if err != nil {
		s.log.Error("Failed to query system events",
			zap.Int("timeframe_days", timeframeDays),
			zap.Error(err))
		return nil, err
	}

	metrics := analytics.AggregateSystem(events)
	return &metrics, nil
}

// GenerateInsights produces the dashboard insight payload for either one
// user (userID set) or the whole system.
func (s *TelemetryService) GenerateInsights(ctx context.Context, userID string, timeframeDays int) (*analytics.InsightsPayload, error) {
	if userID != "" {
		metrics, err := s.GetUserMetrics(ctx, userID, timeframeDays)
		if err != nil {
			return nil, err
		}
		payload := analytics.UserInsights(*metrics)
		return &payload, nil
	}

	metrics, err := s.GetSystemMetrics(ctx, timeframeDays)
	if err != nil {
		return nil, err
	}
	payload := analytics.SystemInsights(*metrics)
	return &payload, nil
}

func windowStart(timeframeDays int) time.Time {
	return time.Now().Add(-time.Duration(timeframeDays) * 24 * time.Hour)
}
