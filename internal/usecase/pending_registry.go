package usecase

import (
	"errors"
	"log"
	"sync"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrFlowInProgress = errors.New("flow already in progress")

type pendingEntry struct {
	id        string
	kind      entities.FlowKind
	result    interfaces.IResult
	startedAt time.Time
	timer     *time.Timer
}

// PendingRegistry holds at most one outstanding pending handle per flow kind.
// Entries outlive UI detach/reattach; Close drops them with BridgeClosed.
type PendingRegistry struct {
	mu         sync.Mutex
	entries    map[entities.FlowKind]*pendingEntry
	exec       Executor
	timeouts   map[entities.FlowKind]time.Duration
	onResolved func(entities.FlowRecord)
	now        func() time.Time
}

// NewPendingRegistry builds a registry. Deadline expiry is posted to exec so
// timeouts resolve on the UI thread like any other callback. A zero timeout
// disables the deadline for that kind.
func NewPendingRegistry(exec Executor, timeouts map[entities.FlowKind]time.Duration, onResolved func(entities.FlowRecord)) *PendingRegistry {
	if timeouts == nil {
		timeouts = map[entities.FlowKind]time.Duration{}
	}
	return &PendingRegistry{
		entries:    map[entities.FlowKind]*pendingEntry{},
		exec:       exec,
		timeouts:   timeouts,
		onResolved: onResolved,
		now:        time.Now,
	}
}

// Begin stores result as the pending handle for kind and returns the
// correlation id of the new entry. A second flow of the same kind is rejected
// with ErrFlowInProgress and its result is left untouched.
func (r *PendingRegistry) Begin(kind entities.FlowKind, result interfaces.IResult) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.entries[kind]; ok {
		log.Printf("[bridge][registry] begin rejected kind=%s outstanding_id=%s", kind, cur.id)
		return "", ErrFlowInProgress
	}

	e := &pendingEntry{
		id:        uuid.NewString(),
		kind:      kind,
		result:    result,
		startedAt: r.now(),
	}
	if d := r.timeouts[kind]; d > 0 {
		id := e.id
		e.timer = time.AfterFunc(d, func() {
			r.exec.Post(func() {
				if r.Resolve(kind, id, failureResolution(entities.NewChannelError(entities.ErrorCodeFlowTimeout, "flow timed out"))) {
					log.Printf("[bridge][registry] deadline expired kind=%s id=%s timeout=%s", kind, id, d)
				}
			})
		})
	}
	r.entries[kind] = e
	log.Printf("[bridge][registry] begin kind=%s id=%s", kind, e.id)
	return e.id, nil
}

// Pending returns the correlation id of the outstanding entry for kind.
func (r *PendingRegistry) Pending(kind entities.FlowKind) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[kind]
	if !ok {
		return "", false
	}
	return e.id, true
}

// Resolve delivers res to the outstanding handle of kind and clears it.
// A non-empty id must match the outstanding entry, so callbacks from an older
// flow are ignored. It reports whether a handle was resolved.
func (r *PendingRegistry) Resolve(kind entities.FlowKind, id string, res Resolution) bool {
	r.mu.Lock()
	e, ok := r.entries[kind]
	if !ok || (id != "" && e.id != id) {
		r.mu.Unlock()
		log.Printf("[bridge][registry] resolve ignored kind=%s id=%s", kind, id)
		return false
	}
	delete(r.entries, kind)
	r.mu.Unlock()

	if e.timer != nil {
		e.timer.Stop()
	}
	res.deliver(e.result)
	log.Printf("[bridge][registry] resolved kind=%s id=%s status=%s", kind, e.id, res.Status)

	if r.onResolved != nil {
		r.onResolved(entities.FlowRecord{
			ID:         e.id,
			Kind:       kind,
			Status:     res.Status,
			ErrorCode:  res.errorCode(),
			StartedAt:  e.startedAt,
			ResolvedAt: r.now(),
		})
	}
	return true
}

// Close resolves every outstanding entry with BridgeClosed.
func (r *PendingRegistry) Close() {
	r.mu.Lock()
	kinds := make([]entities.FlowKind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	r.mu.Unlock()

	for _, k := range kinds {
		r.Resolve(k, "", failureResolution(entities.NewChannelError(entities.ErrorCodeBridgeClosed, "bridge closed")))
	}
}
