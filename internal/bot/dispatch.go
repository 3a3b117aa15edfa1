package bot

import "sync"

// dispatcher serialises message handling per chat while keeping distinct
// chats concurrent. The two-turn statistics dialogue depends on messages
// from one conversation being handled in arrival order.
type dispatcher struct {
	mu     sync.Mutex
	queues map[int64]chan func()
}

func newDispatcher() *dispatcher {
	return &dispatcher{queues: make(map[int64]chan func())}
}

// enqueue runs fn after all previously enqueued work for chatID. The first
// message from a chat starts a worker goroutine that drains that chat's
// queue; enqueue blocks when the queue is full.
func (d *dispatcher) enqueue(chatID int64, fn func()) {
	d.mu.Lock()
	q, ok := d.queues[chatID]
	if !ok {
		q = make(chan func(), 16)
		d.queues[chatID] = q
		go func() {
			for queued := range q {
				queued()
			}
		}()
	}
	d.mu.Unlock()
	q <- fn
}

// closeAll stops every chat worker once its queue drains. No enqueue may
// follow.
func (d *dispatcher) closeAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, q := range d.queues {
		close(q)
		delete(d.queues, id)
	}
}
