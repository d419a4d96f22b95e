package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/term-invaders/events"
)

// FireScheduler runs the recurring enemy-fire timer for one level session.
// It never touches entity groups itself: each tick of the timer pushes a
// TypeEnemyFire event onto the queue, and the frame loop (the queue's only
// consumer) spawns the shot between simulation updates. This keeps the timer
// strictly serialized with the tick callback even though it fires from its
// own goroutine.
//
// Stop is deterministic: after it returns, no further events are produced,
// so a torn-down session can never receive a stale shot. Stop is safe to
// call more than once.
type FireScheduler struct {
	queue  *events.Queue
	period time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFireScheduler creates a scheduler that fires every period.
// The caller starts it explicitly once the session is ready.
func NewFireScheduler(queue *events.Queue, period time.Duration) *FireScheduler {
	return &FireScheduler{
		queue:    queue,
		period:   period,
		stopChan: make(chan struct{}),
	}
}

// Period returns the configured firing period.
func (fs *FireScheduler) Period() time.Duration {
	return fs.period
}

// Start begins the timer loop.
func (fs *FireScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		go fs.loop()
	}
}

// Stop halts the timer loop and waits for it to exit.
func (fs *FireScheduler) Stop() {
	fs.stopOnce.Do(func() {
		if fs.running.CompareAndSwap(true, false) {
			close(fs.stopChan)
			fs.wg.Wait()
		}
	})
}

func (fs *FireScheduler) loop() {
	defer fs.wg.Done()

	ticker := time.NewTicker(fs.period)
	defer ticker.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		case t := <-ticker.C:
			fs.queue.Push(events.Event{Type: events.TypeEnemyFire, Timestamp: t})
		}
	}
}
