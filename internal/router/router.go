package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carelane/clinic-api/internal/config"
	"github.com/carelane/clinic-api/internal/handler"
	authHandler "github.com/carelane/clinic-api/internal/handler/auth"
	pageHandler "github.com/carelane/clinic-api/internal/handler/page"
	patientHandler "github.com/carelane/clinic-api/internal/handler/patient"
	"github.com/carelane/clinic-api/internal/middleware"
)

type Router struct {
	engine   *gin.Engine
	gate     *middleware.SessionGate
	authH    *authHandler.Handler
	patientH *patientHandler.Handler
	pageH    *pageHandler.Handler
	healthH  *handler.Handler
	cfg      *config.Config
	metrics  *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	cfg *config.Config,
	gate *middleware.SessionGate,
	authH *authHandler.Handler,
	patientH *patientHandler.Handler,
	pageH *pageHandler.Handler,
	healthH *handler.Handler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:   engine,
		gate:     gate,
		authH:    authH,
		patientH: patientH,
		pageH:    pageH,
		healthH:  healthH,
		cfg:      cfg,
		metrics:  initRouterMetrics("clinic_api"),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

func (r *Router) Setup() {
	r.engine.LoadHTMLGlob(r.cfg.Server.TemplateGlob)

	// Every route sees the resolved session; page routes degrade to the
	// landing view themselves, API routes enforce it below.
	r.engine.Use(r.gate.Identify())

	r.setupHealthCheck()

	root := r.engine.Group("")

	pages := root.Group("")
	pages.Use(middleware.Cache(middleware.DefaultCacheConfig()))
	r.pageH.RegisterRoutes(pages)

	loginLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   r.cfg.RateLimit.RPS,
		Burst: r.cfg.RateLimit.Burst,
	})
	public := root.Group("")
	public.Use(loginLimiter.RateLimit())
	r.authH.RegisterRoutes(public)

	protected := root.Group("")
	protected.Use(r.gate.RequireDoctor())
	r.patientH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck() {
	health := r.engine.Group("/health")
	{
		health.GET("/live", r.healthH.LivenessCheck)
		health.GET("/ready", r.healthH.ReadinessCheck)
	}
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
