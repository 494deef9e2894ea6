package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	mock_interfaces "cloudpayments_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFlowJournalWorker(t *testing.T) {
	rec := entities.FlowRecord{ID: "f-1", Kind: entities.FlowKindThreeDS, Status: entities.OutcomeStatusSuccess}

	t.Run("fans out to every sink and keeps going after a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		failing := mock_interfaces.NewMockIFlowJournal(ctrl)
		healthy := mock_interfaces.NewMockIFlowJournal(ctrl)

		failing.EXPECT().Record(gomock.Any(), rec).Return(errors.New("unavailable"))
		healthy.EXPECT().Record(gomock.Any(), rec).DoAndReturn(func(ctx context.Context, _ entities.FlowRecord) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("sink context has no deadline")
			}
			return nil
		})

		w := NewFlowJournalWorker(4, failing, healthy)
		w.Enqueue(rec)
		w.Close()
	})

	t.Run("full buffer drops instead of blocking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := mock_interfaces.NewMockIFlowJournal(ctrl)

		release := make(chan struct{})
		var mu sync.Mutex
		written := 0
		sink.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, entities.FlowRecord) error {
			<-release
			mu.Lock()
			written++
			mu.Unlock()
			return nil
		}).AnyTimes()

		w := NewFlowJournalWorker(1, sink)
		done := make(chan struct{})
		go func() {
			for i := 0; i < 10; i++ {
				w.Enqueue(rec)
			}
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("Enqueue blocked")
		}
		close(release)
		w.Close()

		mu.Lock()
		defer mu.Unlock()
		if written < 1 || written > 2 {
			t.Fatalf("expected one or two records written, got %d", written)
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		w := NewFlowJournalWorker(0)
		w.Close()
		w.Close()
	})
}
