package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/domain"
	"github.com/almonzeir/sudannnnn/internal/llm"
	"github.com/almonzeir/sudannnnn/internal/scoring"
)

// SendInput is one inbound chat turn.
type SendInput struct {
	Message        string
	UserID         string
	ConversationID string
	SessionID      string
	IPAddress      string
	UserAgent      string
}

// SendResult is the annotated assistant reply for one turn.
type SendResult struct {
	Response       string
	ConversationID string
	SessionID      string
	ResponseTimeMs int64
	Assessment     scoring.Assessment
}

// ChatService handles one chat turn end to end: it asks the assistant for a
// reply, scores it, and records the paired telemetry events. Telemetry is
// strictly fire-and-forget relative to the chat result.
type ChatService struct {
	telemetry TelemetryServicer
	responder llm.Responder
	log       *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(telemetry TelemetryServicer, responder llm.Responder, log *zap.Logger) *ChatService {
	return &ChatService{
		telemetry: telemetry,
		responder: responder,
		log:       log,
	}
}

// Send processes one chat turn. The inbound message_sent event is always
// logged before the outbound response_received event; a failed assistant
// call additionally logs an error event and substitutes the fallback reply
// with its fixed low-confidence assessment, so the caller always receives a
// valid response and assessment.
func (s *ChatService) Send(ctx context.Context, input *SendInput) (*SendResult, error) {
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	continuing := input.ConversationID != ""
	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	s.logEvent(ctx, input, sessionID, conversationID, &EventInput{
		EventType: domain.EventMessageSent,
		MessageSent: &domain.MessageSent{
			MessageLength: utf8.RuneCountInString(input.Message),
		},
	})

	start := time.Now()
	response, err := s.responder.Respond(ctx, input.Message, nil)
	responseTime := time.Since(start).Milliseconds()

	var assessment scoring.Assessment
	if err != nil {
		s.log.Error("Assistant call failed, using fallback response",
			zap.String("conversation_id", conversationID),
			zap.Error(err))

		s.logEvent(ctx, input, sessionID, conversationID, &EventInput{
			EventType: domain.EventError,
			ErrorInfo: &domain.ErrorInfo{Message: err.Error()},
		})

		response = llm.FallbackMessage
		assessment = scoring.Assessment{
			Confidence: scoring.MinConfidence,
			Category:   domain.CategoryError,
			Metadata: scoring.Metadata{
				EstimatedTokens:        scoring.EstimateTokens(response),
				ResponseLength:         utf8.RuneCountInString(response),
				HasConversationContext: continuing,
			},
		}
	} else {
		assessment = scoring.Score(response, input.Message)
		assessment.Metadata.HasConversationContext = continuing
	}

	s.logEvent(ctx, input, sessionID, conversationID, &EventInput{
		EventType: domain.EventResponseReceived,
		ResponseReceived: &domain.ResponseReceived{
			ResponseTimeMs: responseTime,
			Confidence:     assessment.Confidence,
			Category:       assessment.Category,
			ContentLength:  utf8.RuneCountInString(response),
		},
	})

	return &SendResult{
		Response:       response,
		ConversationID: conversationID,
		SessionID:      sessionID,
		ResponseTimeMs: responseTime,
		Assessment:     assessment,
	}, nil
}

func (s *ChatService) logEvent(ctx context.Context, input *SendInput, sessionID, conversationID string, event *EventInput) {
	event.UserID = input.UserID
	event.ConversationID = conversationID
	event.SessionID = sessionID
	event.IPAddress = input.IPAddress
	event.UserAgent = input.UserAgent

	if err := s.telemetry.LogEvent(ctx, event); err != nil {
		// Only reachable on a missing session id, which Send always fills.
		s.log.Error("Failed to log interaction event", zap.Error(err))
	}
}
