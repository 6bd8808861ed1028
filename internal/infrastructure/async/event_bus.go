package async

import (
	"context"

	"go.uber.org/zap"

	"activityroster/internal/domain"
)

// Sink receives every published event on a pool worker.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, e domain.Event) error
}

type AsyncEventBus struct {
	pool  *WorkerPool
	sinks []Sink
	log   *zap.Logger
}

func NewAsyncEventBus(ctx context.Context, poolSize, queueSize int, log *zap.Logger, sinks ...Sink) *AsyncEventBus {
	return &AsyncEventBus{
		pool:  NewWorkerPool(ctx, poolSize, queueSize, log),
		sinks: sinks,
		log:   log,
	}
}

func (b *AsyncEventBus) Publish(_ context.Context, e domain.Event) {
	ok := b.pool.TrySubmit(func(ctx context.Context) {
		for _, s := range b.sinks {
			if err := s.Deliver(ctx, e); err != nil {
				b.log.Warn("event delivery failed",
					zap.String("sink", s.Name()),
					zap.String("type", e.Type),
					zap.Error(err),
				)
			}
		}
	})
	if !ok {
		b.log.Warn("event dropped", zap.String("type", e.Type))
	}
}

func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}

// LogSink writes events to the structured log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, e domain.Event) error {
	s.log.Info("domain_event",
		zap.String("type", e.Type),
		zap.Time("occurred_at", e.OccurredAt),
		zap.Any("payload", e.Payload),
	)
	return nil
}
