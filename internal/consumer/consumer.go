package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/almonzeir/sudannnnn/internal/config"
	"github.com/almonzeir/sudannnnn/internal/idempotency"
	"github.com/almonzeir/sudannnnn/internal/queue"
	"github.com/almonzeir/sudannnnn/internal/repository"
)

// Consumer orchestrates a pipeline of stages to process SQS messages
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	idempotency *IdempotencyStage
	batchWriter *BatchWriter
	buffer      int
}

// NewConsumer creates a new consumer with a pipeline architecture. The
// idempotency stage is skipped when checker is nil (dedup disabled).
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, repo repository.EventRepository, checker idempotency.Checker, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     int32(cfg.Consumer.ReceiveMaxMessages),
		WaitTimeSeconds: int32(cfg.Consumer.ReceiveWaitTimeSec),
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONEventParser(), log)

	var idempotencyStage *IdempotencyStage
	if checker != nil {
		idempotencyStage = NewIdempotencyStage(checker, IdempotencyStageConfig{
			FailOpen: cfg.Valkey.IdempotencyFailOpen,
		}, log)
	}

	batchWriter := NewBatchWriter(repo, BatchWriterConfig{
		MaxBatchSize: cfg.Consumer.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.Consumer.BatchTimeoutSec) * time.Second,
	}, log)

	return &Consumer{
		receiver:    receiver,
		parser:      parser,
		idempotency: idempotencyStage,
		batchWriter: batchWriter,
		buffer:      cfg.Consumer.ChannelBufferSize,
	}
}

// Start begins the consumer pipeline
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, c.buffer)
	envelopeChan := make(chan *Envelope, c.buffer)

	writerIn := envelopeChan

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	if c.idempotency != nil {
		dedupedChan := make(chan *Envelope, c.buffer)
		writerIn = dedupedChan

		wg.Add(1)
		go func() {
			defer wg.Done()
			c.idempotency.Start(ctx, envelopeChan, dedupedChan)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, writerIn)
	}()

	wg.Wait()
	return nil
}
