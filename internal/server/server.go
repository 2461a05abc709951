package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tripveda/tripveda/internal/activity"
	activitydomain "github.com/tripveda/tripveda/internal/activity/domain"
	"github.com/tripveda/tripveda/internal/booking"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
	"github.com/tripveda/tripveda/internal/cab"
	cabdomain "github.com/tripveda/tripveda/internal/cab/domain"
	"github.com/tripveda/tripveda/internal/config"
	"github.com/tripveda/tripveda/internal/coupon"
	coupondomain "github.com/tripveda/tripveda/internal/coupon/domain"
	"github.com/tripveda/tripveda/internal/houseboat"
	houseboatdomain "github.com/tripveda/tripveda/internal/houseboat/domain"
	"github.com/tripveda/tripveda/internal/observability"
	obsmiddleware "github.com/tripveda/tripveda/internal/observability/logger"
	obsmetrics "github.com/tripveda/tripveda/internal/observability/metrics"
	obstracing "github.com/tripveda/tripveda/internal/observability/tracing"
	"github.com/tripveda/tripveda/internal/packages"
	packagedomain "github.com/tripveda/tripveda/internal/packages/domain"
	"github.com/tripveda/tripveda/internal/pricing"
	"github.com/tripveda/tripveda/internal/property"
	propertydomain "github.com/tripveda/tripveda/internal/property/domain"
	"github.com/tripveda/tripveda/internal/ratelimit"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	property.Module,
	packages.Module,
	activity.Module,
	cab.Module,
	houseboat.Module,
	coupon.Module,
	pricing.Module,
	booking.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	propertySvc  propertydomain.Service
	packageSvc   packagedomain.Service
	activitySvc  activitydomain.Service
	cabSvc       cabdomain.Service
	houseboatSvc houseboatdomain.Service
	couponSvc    coupondomain.Service
	bookingSvc   bookingdomain.Service
	limiter      *ratelimit.ReviewLimiter
	obsMetrics   *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	PropertySvc  propertydomain.Service
	PackageSvc   packagedomain.Service
	ActivitySvc  activitydomain.Service
	CabSvc       cabdomain.Service
	HouseboatSvc houseboatdomain.Service
	CouponSvc    coupondomain.Service
	BookingSvc   bookingdomain.Service
	Limiter      *ratelimit.ReviewLimiter `optional:"true"`
	ObsMetrics   *obsmetrics.Metrics      `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		propertySvc:  p.PropertySvc,
		packageSvc:   p.PackageSvc,
		activitySvc:  p.ActivitySvc,
		cabSvc:       p.CabSvc,
		houseboatSvc: p.HouseboatSvc,
		couponSvc:    p.CouponSvc,
		bookingSvc:   p.BookingSvc,
		limiter:      p.Limiter,
		obsMetrics:   p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/properties", s.ListProperties)
	api.GET("/properties/:id", s.GetProperty)
	api.GET("/packages", s.ListPackages)
	api.GET("/packages/:id", s.GetPackage)
	api.GET("/activities", s.ListActivities)
	api.GET("/activities/:id", s.GetActivity)
	api.GET("/cabs", s.ListCabs)
	api.GET("/cabs/:id", s.GetCab)
	api.GET("/cab-categories", s.ListCabCategories)
	api.GET("/houseboats", s.ListHouseBoats)
	api.GET("/houseboats/:id", s.GetHouseBoat)
	api.GET("/coupons", s.ListCoupons)
	api.GET("/coupons/validate", s.ValidateCoupon)

	bookings := api.Group("/bookings", s.requireUser())
	bookings.POST("/review", s.reviewRateLimit(), s.ReviewBooking)
	bookings.GET("/review", s.GetBookingReview)
	bookings.POST("/:id/confirm", s.ConfirmBooking)
	bookings.GET("", s.ListBookings)
	bookings.GET("/:id", s.GetBooking)
}
