package routes

import (
	"cloudpayments_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChannel = "/channel"
	PathHost    = "/host"
	PathFlows   = "/flows"
)

func addChannelRoutes(rg *gin.RouterGroup, channelHandler *handlers.ChannelHandler) {
	rg.POST(PathChannel+"/:method", channelHandler.Invoke)
}

func addHostRoutes(rg *gin.RouterGroup, hostHandler *handlers.HostHandler) {
	host := rg.Group(PathHost)
	{
		host.POST("/attach", hostHandler.Attach)
		host.POST("/detach", hostHandler.Detach)
		host.POST("/activity-result", hostHandler.ActivityResult)
		host.GET("/surfaces", hostHandler.Surfaces)
	}

	challenges := host.Group("/3ds/:transactionId")
	{
		challenges.POST("/complete", hostHandler.CompleteChallenge)
		challenges.POST("/fail", hostHandler.FailChallenge)
		challenges.POST("/cancel", hostHandler.CancelChallenge)
	}
}

func addFlowRoutes(rg *gin.RouterGroup, flowHandler *handlers.FlowHandler) {
	rg.GET(PathFlows+"/:id", flowHandler.GetFlow)
}
