package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "cloudpayments_bridge/docs"
	"cloudpayments_bridge/internal/adapter/http/handlers"
	"cloudpayments_bridge/internal/config"
	"cloudpayments_bridge/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.ServiceName)
		if err != nil {
			log.Printf("[bridge][app] tracing disabled err=%v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("[bridge][app] tracer shutdown failed err=%v", err)
				}
			}()
		}
	}

	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer app.Close()

	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, app, cfg)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: otelhttp.NewHandler(router, cfg.ServiceName),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()
	log.Printf("[bridge][app] listening addr=%s", cfg.HTTP.Addr)

	<-ctx.Done()
	// Waiting channel calls get BridgeClosed before the server drains them.
	app.bridge.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[bridge][app] http shutdown failed err=%v", err)
	}
}

func getRoutes(r *gin.Engine, app *application, cfg config.Config) {
	channelHandler := handlers.NewChannelHandler(app.bridge, cfg.HTTP.CallTimeout)
	hostHandler := handlers.NewHostHandler(app.bridge, app.host)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addChannelRoutes(v1, channelHandler)
	addHostRoutes(v1, hostHandler)
	if app.flows != nil {
		addFlowRoutes(v1, handlers.NewFlowHandler(app.flows))
	}
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
