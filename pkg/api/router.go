package api

import (
	"context"
	"net/http"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/api/demorequest"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/api/health"
	apiutils "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/api/utils"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Router represents the routes for the http server.
type Router struct {
	cfg            *config.Config
	signalCtx      context.Context
	intakeService  core.IntakeService
	recorder       core.IntakeRecorder
	metricsHandler http.Handler
	logger         lumber.Logger
}

// New returns a New Router. metricsHandler may be nil, in which case /metrics is not served.
func New(
	signalCtx context.Context,
	cfg *config.Config,
	intakeService core.IntakeService,
	recorder core.IntakeRecorder,
	metricsHandler http.Handler,
	logger lumber.Logger) Router {
	return Router{
		cfg:            cfg,
		signalCtx:      signalCtx,
		intakeService:  intakeService,
		recorder:       recorder,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

// Handler function will perform all route operations
func (r *Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := apiutils.ConfigureValidator(v); err != nil {
			r.logger.Fatalf("failed to configure validator %v", err)
		}
	}
	// skip /health API from logs as will be required in probes
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/health"))
	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		r.logger.Errorf("panic while serving %s: %v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errs.GenericErrorMessage)
	}))
	router.Use(cors.New(r.corsConfig()))
	router.Use(otelgin.Middleware(constants.ServiceName))
	if r.cfg.Env == constants.Dev {
		pprof.Register(router)
	}

	router.GET("/health", health.Handler(r.signalCtx))
	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	demoRoutes := router.Group("/api/demo-request")
	demoRoutes.POST("", demorequest.HandleCreate(r.intakeService, r.recorder, r.logger))
	demoRoutes.GET("/storage", demorequest.HandleStorageStatus(r.intakeService))

	return router
}

func (r *Router) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	origins := r.cfg.CorsAllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowHeaders("cache-control", "pragma")
	return corsConfig
}
