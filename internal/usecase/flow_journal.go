package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

const defaultJournalWriteTimeout = 5 * time.Second

// FlowJournalWorker fans resolved-flow records out to every sink off the UI
// thread. Records are dropped, with a log line, when the buffer is full.
type FlowJournalWorker struct {
	sinks   []interfaces.IFlowJournal
	records chan entities.FlowRecord
	timeout time.Duration
	wg      sync.WaitGroup
	once    sync.Once
}

func NewFlowJournalWorker(buffer int, sinks ...interfaces.IFlowJournal) *FlowJournalWorker {
	if buffer <= 0 {
		buffer = 1
	}
	w := &FlowJournalWorker{
		sinks:   sinks,
		records: make(chan entities.FlowRecord, buffer),
		timeout: defaultJournalWriteTimeout,
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Enqueue never blocks.
func (w *FlowJournalWorker) Enqueue(rec entities.FlowRecord) {
	select {
	case w.records <- rec:
	default:
		log.Printf("[bridge][journal] buffer full; dropping record id=%s kind=%s", rec.ID, rec.Kind)
	}
}

// Close flushes queued records and waits for the worker to exit. Enqueue must
// not be called afterwards.
func (w *FlowJournalWorker) Close() {
	w.once.Do(func() { close(w.records) })
	w.wg.Wait()
}

func (w *FlowJournalWorker) run() {
	defer w.wg.Done()
	for rec := range w.records {
		for _, sink := range w.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
			if err := sink.Record(ctx, rec); err != nil {
				log.Printf("[bridge][journal] record failed id=%s kind=%s err=%v", rec.ID, rec.Kind, err)
			}
			cancel()
		}
	}
}
