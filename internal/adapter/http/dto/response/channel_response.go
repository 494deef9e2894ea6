package response

import "cloudpayments_bridge/internal/domain/entities"

// ChannelResultResponse carries a successful channel reply.
type ChannelResultResponse struct {
	Result any `json:"result"`
}

// ChannelErrorResponse carries a channel failure (code, message, details).
type ChannelErrorResponse struct {
	Error *entities.ChannelError `json:"error"`
}

type NotImplementedResponse struct {
	NotImplemented bool `json:"notImplemented"`
}
