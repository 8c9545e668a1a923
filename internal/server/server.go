package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/stride/internal/catalog"
	catalogdomain "github.com/smallbiznis/stride/internal/catalog/domain"
	"github.com/smallbiznis/stride/internal/category"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/internal/clock"
	"github.com/smallbiznis/stride/internal/config"
	"github.com/smallbiznis/stride/internal/observability"
	obsmiddleware "github.com/smallbiznis/stride/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/stride/internal/observability/metrics"
	obstracing "github.com/smallbiznis/stride/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	catalog.Module,
	category.Module,
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

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
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
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	catalogSvc  catalogdomain.Service
	categorySvc categorydomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	CatalogSvc  catalogdomain.Service
	CategorySvc categorydomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("server"),
		clock:       p.Clock,
		catalogSvc:  p.CatalogSvc,
		categorySvc: p.CategorySvc,
	}

	svc.registerStorefrontRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerStorefrontRoutes() {
	r := s.engine

	r.GET("/", s.Home)
	r.GET("/products", s.ListProducts)
	r.GET("/products/:slug", s.GetProductBySlug)
	r.GET("/health-check", s.HealthCheck)
}
