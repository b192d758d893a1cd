package events

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Bus fans events out to subscribers and writes each one to its logger.
// Publish never blocks: a subscriber whose channel is full misses the
// event and the drop counter advances, so a stalled consumer cannot stall
// a resolution in progress.
type Bus struct {
	logger *zap.Logger

	mu   sync.Mutex
	subs []chan<- Event

	dropped atomic.Int64
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make([]chan<- Event, 0),
	}
}

// Subscribe registers a channel to receive every event published after
// this call. Use a buffered channel; slow receivers drop events rather
// than block the engine.
func (b *Bus) Subscribe(ch chan<- Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, ch)
}

func (b *Bus) Publish(e Event) {
	b.log(e)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped reports how many event deliveries were skipped because a
// subscriber's channel was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Bus) log(e Event) {
	fields := []zap.Field{zap.String("belief_id", e.BeliefID)}
	if e.RelatedID != "" {
		fields = append(fields, zap.String("related_id", e.RelatedID))
	}
	if e.Entity != "" {
		fields = append(fields, zap.String("entity", e.Entity), zap.String("predicate", e.Predicate))
	}
	if e.Value != "" {
		fields = append(fields, zap.String("value", e.Value))
	}
	if e.OldConfidence != e.NewConfidence {
		fields = append(fields,
			zap.Float64("old_confidence", e.OldConfidence),
			zap.Float64("new_confidence", e.NewConfidence))
	}
	if e.NewStatus != "" {
		if e.OldStatus != "" {
			fields = append(fields, zap.String("old_status", e.OldStatus))
		}
		fields = append(fields, zap.String("new_status", e.NewStatus))
	}

	switch e.Type {
	case TypeContradictionDetected:
		b.logger.Warn(string(e.Type), fields...)
	case TypeConfidenceDecayed:
		b.logger.Debug(string(e.Type), fields...)
	default:
		b.logger.Info(string(e.Type), fields...)
	}
}
