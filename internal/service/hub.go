package service

import (
	"sync"

	"taskmanager/internal/models"
)

// TaskEvent is pushed to connected WebSocket clients on task mutations.
// Task is populated on creation; update/delete carry only the id.
type TaskEvent struct {
	Type   string       `json:"type"` // TASK_CREATED | TASK_UPDATED | TASK_DELETED
	TaskID int          `json:"task_id"`
	Task   *models.Task `json:"task,omitempty"`
}

const subscriberBuffer = 16

// Hub fans task events out to subscribers. Broadcast never blocks: a
// subscriber whose buffer is full misses the event instead of stalling the
// mutation path.
type Hub struct {
	mu   sync.Mutex
	subs map[chan TaskEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan TaskEvent]struct{})}
}

// Subscribe registers a new listener and returns its channel along with an
// unsubscribe func. The channel is closed on unsubscribe.
func (h *Hub) Subscribe() (<-chan TaskEvent, func()) {
	ch := make(chan TaskEvent, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	once := sync.Once{}
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Broadcast delivers ev to every subscriber with room in its buffer.
func (h *Hub) Broadcast(ev TaskEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default: // slow client, drop
		}
	}
}

// SubscriberCount reports the number of active listeners.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
