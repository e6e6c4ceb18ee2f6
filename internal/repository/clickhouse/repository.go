package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/domain"
	"github.com/almonzeir/sudannnnn/internal/repository"
)

// Repository implements EventRepository for ClickHouse. The tagged payload
// union is flattened into typed columns on write and rebuilt on read, so the
// aggregators never probe untyped metadata.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the ClickHouse schema with ReplacingMergeTree engine.
// The engine dedupes on event_id as a safety net behind the consumer's
// idempotency stage.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS chat_events (
		event_id String,
		user_id String,
		conversation_id String,
		session_id String,
		event_type LowCardinality(String),
		message_length Int32,
		response_time_ms Int64,
		confidence Float64,
		category LowCardinality(String),
		content_length Int32,
		error_message String,
		ip_address String,
		user_agent String,
		created_at DateTime64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, created_at)
	PARTITION BY toYYYYMM(created_at)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create chat_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO chat_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}

		var (
			messageLength  int32
			responseTimeMs int64
			confidence     float64
			category       string
			contentLength  int32
			errorMessage   string
		)

		switch event.EventType {
		case domain.EventMessageSent:
			if event.MessageSent != nil {
				messageLength = int32(event.MessageSent.MessageLength)
			}
		case domain.EventResponseReceived:
			if event.ResponseReceived != nil {
				responseTimeMs = event.ResponseReceived.ResponseTimeMs
				confidence = event.ResponseReceived.Confidence
				category = string(event.ResponseReceived.Category)
				contentLength = int32(event.ResponseReceived.ContentLength)
			}
		case domain.EventError:
			if event.ErrorInfo != nil {
				errorMessage = event.ErrorInfo.Message
			}
		}

		err := batch.Append(
			event.EventID,
			event.UserID,
			event.ConversationID,
			event.SessionID,
			string(event.EventType),
			messageLength,
			responseTimeMs,
			confidence,
			category,
			contentLength,
			errorMessage,
			event.IPAddress,
			event.UserAgent,
			event.CreatedAt,
			event.Version,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// QueryEvents returns raw events matching the filter, ordered by created_at
// ascending.
func (r *Repository) QueryEvents(ctx context.Context, filter repository.EventFilter) ([]*domain.Event, error) {
	whereClause := "WHERE 1 = 1"
	args := []interface{}{}

	if filter.ConversationID != "" {
		whereClause += " AND conversation_id = ?"
		args = append(args, filter.ConversationID)
	}
	if filter.UserID != "" {
		whereClause += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if !filter.Since.IsZero() {
		whereClause += " AND created_at >= ?"
		args = append(args, filter.Since)
	}

	query := fmt.Sprintf(`
		SELECT
			event_id, user_id, conversation_id, session_id, event_type,
			message_length, response_time_ms, confidence, category,
			content_length, error_message, ip_address, user_agent,
			created_at, version
		FROM chat_events FINAL
		%s
		ORDER BY created_at ASC
	`, whereClause)

	rows, err := r.client.Conn().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close event rows", zap.Error(err))
		}
	}(rows)

	var events []*domain.Event
	for rows.Next() {
		var (
			event          domain.Event
			eventType      string
			messageLength  int32
			responseTimeMs int64
			confidence     float64
			category       string
			contentLength  int32
			errorMessage   string
		)

		if err := rows.Scan(
			&event.EventID,
			&event.UserID,
			&event.ConversationID,
			&event.SessionID,
			&eventType,
			&messageLength,
			&responseTimeMs,
			&confidence,
			&category,
			&contentLength,
			&errorMessage,
			&event.IPAddress,
			&event.UserAgent,
			&event.CreatedAt,
			&event.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}

		event.EventType = domain.EventType(eventType)
		switch event.EventType {
		case domain.EventMessageSent:
			event.MessageSent = &domain.MessageSent{
				MessageLength: int(messageLength),
			}
		case domain.EventResponseReceived:
			event.ResponseReceived = &domain.ResponseReceived{
				ResponseTimeMs: responseTimeMs,
				Confidence:     confidence,
				Category:       domain.Category(category),
				ContentLength:  int(contentLength),
			}
		case domain.EventError:
			event.ErrorInfo = &domain.ErrorInfo{
				Message: errorMessage,
			}
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
