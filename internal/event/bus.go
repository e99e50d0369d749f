package event

import (
	"sync"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// ScheduleUpdated is published after a transaction that mutated a payment
// schedule has committed. Subscribers see committed state only.
type ScheduleUpdated struct {
	Schedule   domain.PaymentSchedule
	OccurredAt time.Time
}

// Bus is a small in-process publish/subscribe channel for schedule updates.
// Publishing never blocks: a subscriber that falls behind loses events, which
// is acceptable for dashboard refresh traffic.
type Bus struct {
	mu   sync.RWMutex
	subs []chan ScheduleUpdated
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its receive channel.
func (b *Bus) Subscribe(buffer int) <-chan ScheduleUpdated {
	ch := make(chan ScheduleUpdated, buffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish delivers e to every subscriber without blocking.
func (b *Bus) Publish(e ScheduleUpdated) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			logger.Warn("Dropping schedule update event, subscriber is full", "schedule_id", e.Schedule.ID)
		}
	}
}
