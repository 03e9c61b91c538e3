package main

import (
	"context"
	"sync"
)

const defaultQueueCapacity = 64

// Poster hands a task to the event loop goroutine
type Poster interface {
	Post(task func())
}

// EventQueue is the mailbox of the single-threaded event loop.
// Any goroutine may Post; only the loop goroutine may Drain or Wait, so tasks
// never run concurrently with each other or with input handling.
type EventQueue struct {
	tasks     chan func()
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	posted  int64
	dropped int64
}

// NewEventQueue creates an event queue with the given buffer capacity
func NewEventQueue(capacity int) *EventQueue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &EventQueue{
		tasks: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Post enqueues task. It blocks while the buffer is full and drops the task
// once the queue is closed.
func (q *EventQueue) Post(task func()) {
	select {
	case <-q.done:
		q.countDrop()
		return
	default:
	}

	select {
	case q.tasks <- task:
		q.mu.Lock()
		q.posted++
		q.mu.Unlock()
	case <-q.done:
		q.countDrop()
	}
}

// Drain runs every task queued right now and returns how many ran
func (q *EventQueue) Drain() int {
	n := 0
	for {
		select {
		case task := <-q.tasks:
			task()
			n++
		default:
			return n
		}
	}
}

// Wait blocks until one task is available, then runs it
func (q *EventQueue) Wait(ctx context.Context) error {
	select {
	case task := <-q.tasks:
		task()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks. Already queued tasks can still be drained.
func (q *EventQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

// Stats returns the number of accepted and dropped tasks
func (q *EventQueue) Stats() (posted, dropped int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.posted, q.dropped
}

func (q *EventQueue) countDrop() {
	q.mu.Lock()
	q.dropped++
	q.mu.Unlock()
	debugLog("EventQueue closed, dropping task")
}
