package interfaces

import "cloudpayments_bridge/internal/domain/entities"

// IResult delivers the reply of one channel call. Implementations expect a
// single call to one of the three methods.
type IResult interface {
	Success(payload any)
	Error(err *entities.ChannelError)
	NotImplemented()
}
