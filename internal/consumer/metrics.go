package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline counters, exposed on the consumer's health server.
var (
	messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "messages_received_total",
		Help:      "Messages received from the queue.",
	})
	messagesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "messages_parsed_total",
		Help:      "Messages successfully parsed into events.",
	})
	parseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "parse_failures_total",
		Help:      "Messages dropped because they could not be parsed.",
	})
	duplicateEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "duplicate_events_total",
		Help:      "Events dropped by the idempotency check.",
	})
	eventsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "events_inserted_total",
		Help:      "Events written to the event store.",
	})
	insertFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat_telemetry",
		Subsystem: "consumer",
		Name:      "insert_failures_total",
		Help:      "Batch insert attempts that failed.",
	})
)
