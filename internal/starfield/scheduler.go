package starfield

import (
	"sync"
	"time"
)

// FrameFunc is invoked once per display refresh with the host's frame time.
type FrameFunc func(now time.Duration)

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// Scheduler is the host's display-refresh mechanism. A requested callback
// fires at most once; cancelling an unknown or already fired handle is a no-op.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// FrameQueue is a Scheduler driven by an external tick, for hosts whose
// refresh loop calls into us (ebiten's Draw) and for tests.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameHandle
	pending map[FrameHandle]FrameFunc
	order   []FrameHandle
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: make(map[FrameHandle]FrameFunc)}
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// CancelFrame drops a queued callback.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	q.mu.Lock()
	delete(q.pending, h)
	q.mu.Unlock()
}

// Tick runs every callback queued before the call. Callbacks requested while
// ticking wait for the next Tick. It returns how many callbacks ran.
func (q *FrameQueue) Tick(now time.Duration) int {
	q.mu.Lock()
	batch := q.order
	q.order = nil
	q.mu.Unlock()

	ran := 0
	for _, h := range batch {
		q.mu.Lock()
		fn, ok := q.pending[h]
		delete(q.pending, h)
		q.mu.Unlock()

		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// Pending reports how many callbacks are waiting.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
