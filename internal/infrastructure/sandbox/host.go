package sandbox

import "sync"

// Host tracks the activity currently attached to the bridge and routes 3-D
// Secure callbacks to the presenter.
type Host struct {
	mu        sync.Mutex
	current   *Activity
	presenter *ChallengePresenter
}

func NewHost(presenter *ChallengePresenter) *Host {
	return &Host{presenter: presenter}
}

// Attach makes activityID the current activity. Reattaching the same id keeps
// its surfaces.
func (h *Host) Attach(activityID string) *Activity {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil || h.current.ID() != activityID {
		h.current = NewActivity(activityID)
	}
	return h.current
}

// Detach forgets the current activity and returns it.
func (h *Host) Detach() *Activity {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.current
	h.current = nil
	return prev
}

func (h *Host) Current() *Activity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *Host) Presenter() *ChallengePresenter { return h.presenter }
