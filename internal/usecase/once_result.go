package usecase

import (
	"log"
	"sync/atomic"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

// onceResult is the pending response handle of one channel call. The first
// reply wins; later replies are dropped and logged.
type onceResult struct {
	method string
	target interfaces.IResult
	done   atomic.Bool
}

var _ interfaces.IResult = (*onceResult)(nil)

func newOnceResult(method string, target interfaces.IResult) *onceResult {
	return &onceResult{method: method, target: target}
}

func (r *onceResult) claim() bool {
	if r.done.CompareAndSwap(false, true) {
		return true
	}
	log.Printf("[bridge][result] duplicate reply dropped method=%s", r.method)
	return false
}

func (r *onceResult) Success(payload any) {
	if r.claim() {
		r.target.Success(payload)
	}
}

func (r *onceResult) Error(err *entities.ChannelError) {
	if r.claim() {
		r.target.Error(err)
	}
}

func (r *onceResult) NotImplemented() {
	if r.claim() {
		r.target.NotImplemented()
	}
}
