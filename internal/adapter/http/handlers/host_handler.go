package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "cloudpayments_bridge/internal/adapter/http/dto/request"
	response "cloudpayments_bridge/internal/adapter/http/dto/response"
	"cloudpayments_bridge/internal/infrastructure/sandbox"
	"cloudpayments_bridge/internal/usecase"
	"cloudpayments_bridge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidHostPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errChallengeNotFound  = pkg.NewDomainErrorSimple("CHALLENGE_NOT_FOUND", "No challenge shown for this transaction", http.StatusNotFound)
)

// HostHandler plays the part of the native host: it attaches activities to the
// bridge, forwards activity results and answers shown 3-D Secure challenges.
type HostHandler struct {
	bridge usecase.IBridgeUseCase
	host   *sandbox.Host
}

func NewHostHandler(bridge usecase.IBridgeUseCase, host *sandbox.Host) *HostHandler {
	return &HostHandler{bridge: bridge, host: host}
}

func configChange(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("configChange"))
	return v
}

// Attach godoc
// @Summary  Attach an activity
// @Tags     host
// @Accept   json
// @Produce  json
// @Param    configChange  query  bool  false  "Reattach after a configuration change"
// @Param    body  body  request.AttachRequest  true  "Activity"
// @Success  200  {object}  response.HostStateResponse
// @Router   /host/attach [post]
func (h *HostHandler) Attach(c *gin.Context) {
	var payload request.AttachRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHostPayload.HTTPStatus, errInvalidHostPayload.ToHTTPError())
		return
	}

	activity := h.host.Attach(payload.ActivityID)
	if configChange(c) {
		h.bridge.Reattach(activity)
	} else {
		h.bridge.Attach(activity)
	}
	log.Printf("[bridge][host] attach activity_id=%s config_change=%t", payload.ActivityID, configChange(c))
	c.JSON(http.StatusOK, response.HostStateResponse{ActivityID: activity.ID(), Attached: true})
}

// Detach godoc
// @Summary  Detach the current activity
// @Tags     host
// @Produce  json
// @Param    configChange  query  bool  false  "Detach for a configuration change"
// @Success  200  {object}  response.HostStateResponse
// @Router   /host/detach [post]
func (h *HostHandler) Detach(c *gin.Context) {
	if configChange(c) {
		h.bridge.DetachForConfigChanges()
	} else {
		h.bridge.Detach()
	}
	prev := h.host.Detach()
	out := response.HostStateResponse{}
	if prev != nil {
		out.ActivityID = prev.ID()
	}
	c.JSON(http.StatusOK, out)
}

// ActivityResult godoc
// @Summary  Deliver an activity result
// @Tags     host
// @Accept   json
// @Produce  json
// @Param    body  body  request.ActivityResultRequest  true  "Activity result"
// @Success  200  {object}  response.ActivityResultResponse
// @Router   /host/activity-result [post]
func (h *HostHandler) ActivityResult(c *gin.Context) {
	var payload request.ActivityResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHostPayload.HTTPStatus, errInvalidHostPayload.ToHTTPError())
		return
	}

	ar := payload.ToEntity()
	var handled bool
	select {
	case handled = <-h.bridge.DeliverActivityResult(ar):
	case <-c.Request.Context().Done():
		return
	}
	if handled {
		if a := h.host.Current(); a != nil {
			a.DismissPaymentSheet(ar.RequestCode)
		}
	}
	log.Printf("[bridge][host] activity result request_code=%d result_code=%d handled=%t", ar.RequestCode, ar.ResultCode, handled)
	c.JSON(http.StatusOK, response.ActivityResultResponse{Handled: handled})
}

// Surfaces godoc
// @Summary  List surfaces shown on the current activity
// @Tags     host
// @Produce  json
// @Success  200  {object}  response.SurfacesResponse
// @Router   /host/surfaces [get]
func (h *HostHandler) Surfaces(c *gin.Context) {
	out := response.SurfacesResponse{Surfaces: []sandbox.Surface{}}
	if a := h.host.Current(); a != nil {
		out.ActivityID = a.ID()
		out.Surfaces = a.Surfaces()
	}
	c.JSON(http.StatusOK, out)
}

// CompleteChallenge godoc
// @Summary  Complete a 3-D Secure challenge
// @Tags     host
// @Accept   json
// @Produce  json
// @Param    transactionId  path  string  true  "Transaction id"
// @Param    body  body  request.ChallengeCompleteRequest  true  "Authorization data"
// @Success  200  {object}  response.ChallengeCallbackResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /host/3ds/{transactionId}/complete [post]
func (h *HostHandler) CompleteChallenge(c *gin.Context) {
	var payload request.ChallengeCompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHostPayload.HTTPStatus, errInvalidHostPayload.ToHTTPError())
		return
	}
	txID := c.Param("transactionId")
	h.challengeCallback(c, txID, h.host.Presenter().Complete(txID, payload.MD, payload.PaRes))
}

// FailChallenge godoc
// @Summary  Fail a 3-D Secure challenge
// @Tags     host
// @Accept   json
// @Produce  json
// @Param    transactionId  path  string  true  "Transaction id"
// @Param    body  body  request.ChallengeFailRequest  false  "Failure page"
// @Success  200  {object}  response.ChallengeCallbackResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /host/3ds/{transactionId}/fail [post]
func (h *HostHandler) FailChallenge(c *gin.Context) {
	var payload request.ChallengeFailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidHostPayload.HTTPStatus, errInvalidHostPayload.ToHTTPError())
			return
		}
	}
	txID := c.Param("transactionId")
	h.challengeCallback(c, txID, h.host.Presenter().Fail(txID, payload.HTML))
}

// CancelChallenge godoc
// @Summary  Cancel a 3-D Secure challenge
// @Tags     host
// @Produce  json
// @Param    transactionId  path  string  true  "Transaction id"
// @Success  200  {object}  response.ChallengeCallbackResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /host/3ds/{transactionId}/cancel [post]
func (h *HostHandler) CancelChallenge(c *gin.Context) {
	txID := c.Param("transactionId")
	h.challengeCallback(c, txID, h.host.Presenter().Cancel(txID))
}

func (h *HostHandler) challengeCallback(c *gin.Context, txID string, err error) {
	if errors.Is(err, sandbox.ErrChallengeNotFound) {
		log.Printf("[bridge][host] challenge not found transaction_id=%s", txID)
		c.JSON(errChallengeNotFound.HTTPStatus, errChallengeNotFound.ToHTTPError())
		return
	}
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ChallengeCallbackResponse{TransactionID: txID, Delivered: true})
}
