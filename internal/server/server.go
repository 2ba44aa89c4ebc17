// Package server exposes the dashboard JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paperledger/paperledger/internal/auth"
	authdomain "github.com/paperledger/paperledger/internal/auth/domain"
	"github.com/paperledger/paperledger/internal/auth/session"
	"github.com/paperledger/paperledger/internal/config"
	"github.com/paperledger/paperledger/internal/customer"
	customerdomain "github.com/paperledger/paperledger/internal/customer/domain"
	"github.com/paperledger/paperledger/internal/dashboard"
	dashboarddomain "github.com/paperledger/paperledger/internal/dashboard/domain"
	"github.com/paperledger/paperledger/internal/invoice"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
	obslogger "github.com/paperledger/paperledger/internal/observability/logger"
	obsmetrics "github.com/paperledger/paperledger/internal/observability/metrics"
	"github.com/paperledger/paperledger/internal/revenue"
	revenuedomain "github.com/paperledger/paperledger/internal/revenue/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	fx.Provide(registerGin),
	auth.Module,
	customer.Module,
	invoice.Module,
	revenue.Module,
	dashboard.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(metrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	return r
}

func registerGin(log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
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
	authsvc      authdomain.Service
	sessions     *session.Manager
	customerSvc  customerdomain.Service
	invoiceSvc   invoicedomain.Service
	revenueSvc   revenuedomain.Service
	dashboardSvc dashboarddomain.Service
	metrics      *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	CustomerSvc  customerdomain.Service
	InvoiceSvc   invoicedomain.Service
	RevenueSvc   revenuedomain.Service
	DashboardSvc dashboarddomain.Service
	Metrics      *obsmetrics.Metrics
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		customerSvc:  p.CustomerSvc,
		invoiceSvc:   p.InvoiceSvc,
		revenueSvc:   p.RevenueSvc,
		dashboardSvc: p.DashboardSvc,
		metrics:      p.Metrics,
	}

	s.registerAuthRoutes()
	s.registerAdminRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.Me)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.WebAuthRequired())

	admin.GET("/dashboard/revenue", s.Revenue)
	admin.GET("/dashboard/cards", s.Cards)
	admin.GET("/dashboard/latest-invoices", s.LatestInvoices)

	admin.GET("/invoices", s.ListInvoices)
	admin.GET("/invoices/pages", s.InvoicePages)
	admin.POST("/invoices", s.CreateInvoice)
	admin.GET("/invoices/:id", s.GetInvoice)
	admin.PUT("/invoices/:id", s.UpdateInvoice)
	admin.DELETE("/invoices/:id", s.DeleteInvoice)

	admin.GET("/customers", s.ListCustomers)
	admin.GET("/customers/table", s.CustomerTable)
}
