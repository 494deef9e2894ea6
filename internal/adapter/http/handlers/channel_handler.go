package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	request "cloudpayments_bridge/internal/adapter/http/dto/request"
	response "cloudpayments_bridge/internal/adapter/http/dto/response"
	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase"
	"cloudpayments_bridge/internal/usecase/interfaces"
	"cloudpayments_bridge/pkg"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cloudpayments_bridge/channel"

var (
	errInvalidArguments = pkg.NewDomainErrorSimple("INVALID_ARGUMENTS", "Channel arguments must be a JSON object", http.StatusBadRequest)
	errReplyTimeout     = pkg.NewDomainErrorSimple("CHANNEL_REPLY_TIMEOUT", "No reply before the request ended", http.StatusGatewayTimeout)
)

type replyKind int

const (
	replySuccess replyKind = iota
	replyError
	replyNotImplemented
)

type channelReply struct {
	kind    replyKind
	payload any
	err     *entities.ChannelError
}

// httpResult hands the bridge reply to the waiting request. Replies that
// arrive after the request gave up are discarded without blocking.
type httpResult struct {
	replies chan channelReply
}

var _ interfaces.IResult = (*httpResult)(nil)

func newHTTPResult() *httpResult {
	return &httpResult{replies: make(chan channelReply, 1)}
}

func (r *httpResult) Success(payload any) {
	r.send(channelReply{kind: replySuccess, payload: payload})
}

func (r *httpResult) Error(err *entities.ChannelError) {
	r.send(channelReply{kind: replyError, err: err})
}

func (r *httpResult) NotImplemented() {
	r.send(channelReply{kind: replyNotImplemented})
}

func (r *httpResult) send(reply channelReply) {
	select {
	case r.replies <- reply:
	default:
	}
}

// ChannelHandler exposes the bridge message channel over HTTP.
type ChannelHandler struct {
	bridge      usecase.IBridgeUseCase
	callTimeout time.Duration
	tracer      trace.Tracer
}

func NewChannelHandler(bridge usecase.IBridgeUseCase, callTimeout time.Duration) *ChannelHandler {
	return &ChannelHandler{
		bridge:      bridge,
		callTimeout: callTimeout,
		tracer:      otel.Tracer(tracerName),
	}
}

// Invoke godoc
// @Summary      Invoke a channel method
// @Description  Dispatches one call on the cloudpayments channel and waits for its reply. Flow methods (show3ds, requestGooglePayPayment) reply once the host delivers the external callback.
// @Tags         channel
// @Accept       json
// @Produce      json
// @Param        method  path  string  true  "Channel method name"
// @Param        arguments  body  object  false  "Method arguments"
// @Success      200  {object}  response.ChannelResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      501  {object}  response.NotImplementedResponse
// @Failure      504  {object}  pkg.HTTPError
// @Router       /channel/{method} [post]
func (h *ChannelHandler) Invoke(c *gin.Context) {
	method := c.Param("method")

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidArguments.HTTPStatus, errInvalidArguments.ToHTTPError())
		return
	}
	args, err := request.ParseArguments(raw)
	if err != nil {
		log.Printf("[bridge][http] invalid arguments method=%s err=%v", method, err)
		c.JSON(errInvalidArguments.HTTPStatus, errInvalidArguments.ToHTTPError())
		return
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "channel."+method,
		trace.WithAttributes(attribute.String("channel.method", method)))
	defer span.End()
	if h.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.callTimeout)
		defer cancel()
	}

	result := newHTTPResult()
	h.bridge.Dispatch(entities.MethodCall{Method: method, Arguments: args}, result)

	select {
	case reply := <-result.replies:
		h.writeReply(c, span, method, reply)
	case <-ctx.Done():
		log.Printf("[bridge][http] reply wait ended method=%s err=%v", method, ctx.Err())
		span.SetStatus(codes.Error, "no reply")
		c.JSON(errReplyTimeout.HTTPStatus, errReplyTimeout.ToHTTPError())
	}
}

func (h *ChannelHandler) writeReply(c *gin.Context, span trace.Span, method string, reply channelReply) {
	switch reply.kind {
	case replyNotImplemented:
		span.SetAttributes(attribute.String("channel.reply", "notImplemented"))
		c.JSON(http.StatusNotImplemented, response.NotImplementedResponse{NotImplemented: true})
	case replyError:
		span.SetAttributes(attribute.String("channel.reply", "error"), attribute.String("channel.error_code", string(reply.err.Code)))
		span.SetStatus(codes.Error, string(reply.err.Code))
		log.Printf("[bridge][http] reply error method=%s code=%s", method, reply.err.Code)
		c.JSON(http.StatusOK, response.ChannelErrorResponse{Error: reply.err})
	default:
		span.SetAttributes(attribute.String("channel.reply", "success"))
		c.JSON(http.StatusOK, response.ChannelResultResponse{Result: reply.payload})
	}
}
