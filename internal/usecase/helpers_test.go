package usecase

import (
	"sync"

	"cloudpayments_bridge/internal/domain/entities"
)

type fakeUI struct{ id string }

func (f fakeUI) ID() string { return f.id }

// recordingResult captures every reply it receives.
type recordingResult struct {
	mu             sync.Mutex
	calls          int
	payload        any
	err            *entities.ChannelError
	notImplemented bool
}

func (r *recordingResult) Success(payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.payload = payload
}

func (r *recordingResult) Error(err *entities.ChannelError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.err = err
}

func (r *recordingResult) NotImplemented() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.notImplemented = true
}

func (r *recordingResult) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *recordingResult) errorCode() entities.ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		return ""
	}
	return r.err.Code
}

func call(method string, args map[string]any) entities.MethodCall {
	return entities.MethodCall{Method: method, Arguments: args}
}
