package handlers

import (
	"log"
	"net/http"

	response "cloudpayments_bridge/internal/adapter/http/dto/response"
	"cloudpayments_bridge/internal/usecase/interfaces"
	"cloudpayments_bridge/pkg"

	"github.com/gin-gonic/gin"
)

// FlowHandler reads resolved flows back from the journal.
type FlowHandler struct {
	flows interfaces.IFlowRepository
}

func NewFlowHandler(flows interfaces.IFlowRepository) *FlowHandler {
	return &FlowHandler{flows: flows}
}

// GetFlow godoc
// @Summary  Get a resolved flow
// @Tags     flows
// @Produce  json
// @Param    id  path  string  true  "Correlation id"
// @Success  200  {object}  response.FlowRecordResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /flows/{id} [get]
func (h *FlowHandler) GetFlow(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.flows.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[bridge][flows] get failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if rec.ID == "" {
		appErr := pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "Flow not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFlowRecord(rec))
}
