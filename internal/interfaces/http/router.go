package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	tickethandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"

	_ "ticketdesk/docs"
)

// RouterConfig carries the settings the HTTP layer needs.
type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider
}

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	ticketHandler *tickethandlers.TicketHandler
	config        RouterConfig
	logger        logger.Interface
}

func NewRouter(ticketHandler *tickethandlers.TicketHandler, cfg RouterConfig, log logger.Interface) *Router {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "ticketdesk"
	}
	return &Router{
		engine:        gin.New(),
		ticketHandler: ticketHandler,
		config:        cfg,
		logger:        log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	var otelOpts []otelgin.Option
	if r.config.TracerProvider != nil {
		otelOpts = append(otelOpts, otelgin.WithTracerProvider(r.config.TracerProvider))
	}

	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(otelgin.Middleware(r.config.ServiceName, otelOpts...))
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.config.AllowedOrigins))

	// registered ahead of SecurityHeaders: the UI needs its inline scripts
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "healthy"})
}
