package usecase

import (
	"log"
	"sync"
)

// Executor runs bridge code on the single logical UI thread.
type Executor interface {
	Post(fn func()) bool
}

// InlineExecutor runs every task immediately on the caller's goroutine.
// Callers must not post from more than one goroutine at a time.
type InlineExecutor struct{}

func (InlineExecutor) Post(fn func()) bool {
	fn()
	return true
}

// Looper is the UI thread: one goroutine draining a FIFO task queue.
type Looper struct {
	tasks    chan func()
	quit     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

var _ Executor = (*Looper)(nil)

// StartLooper starts the loop goroutine and returns the running Looper.
func StartLooper(queueSize int) *Looper {
	if queueSize <= 0 {
		queueSize = 1
	}
	l := &Looper{
		tasks:   make(chan func(), queueSize),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go l.loop()
	return l
}

// Post enqueues fn. It reports false once the looper has been stopped.
func (l *Looper) Post(fn func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// Stop runs the tasks already queued and then ends the loop.
func (l *Looper) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
	<-l.stopped
}

func (l *Looper) loop() {
	defer close(l.stopped)
	for {
		select {
		case fn := <-l.tasks:
			l.run(fn)
		case <-l.quit:
			for {
				select {
				case fn := <-l.tasks:
					l.run(fn)
				default:
					return
				}
			}
		}
	}
}

func (l *Looper) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bridge][looper] recovered from panic: %v", r)
		}
	}()
	fn()
}
