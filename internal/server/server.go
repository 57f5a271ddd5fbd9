package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/config"
	"github.com/Candratama/invow-sub000/internal/customer"
	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	"github.com/Candratama/invow-sub000/internal/invoice"
	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
	obslogger "github.com/Candratama/invow-sub000/internal/observability/logger"
	obsmetrics "github.com/Candratama/invow-sub000/internal/observability/metrics"
	"github.com/Candratama/invow-sub000/internal/providers"
	"github.com/Candratama/invow-sub000/internal/ratelimit"
	"github.com/Candratama/invow-sub000/internal/store"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	"github.com/Candratama/invow-sub000/internal/subscription"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	"github.com/Candratama/invow-sub000/internal/tax"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
)

var Module = fx.Module("http.server",
	cache.Module,
	ratelimit.Module,
	providers.Module,
	store.Module,
	customer.Module,
	tax.Module,
	subscription.Module,
	invoice.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           cfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(cfg, httpMetrics)
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
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	genID           *snowflake.Node
	invoiceSvc      invoicedomain.Service
	customerSvc     customerdomain.Service
	storeSvc        storedomain.Service
	taxSvc          taxdomain.Service
	subscriptionSvc subscriptiondomain.Service
	tierResolver    subscriptiondomain.TierResolver
	publicLimiter   *ratelimit.TokenBucket
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	GenID           *snowflake.Node
	InvoiceSvc      invoicedomain.Service
	CustomerSvc     customerdomain.Service
	StoreSvc        storedomain.Service
	TaxSvc          taxdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	TierResolver    subscriptiondomain.TierResolver
	PublicLimiter   *ratelimit.TokenBucket
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		genID:           p.GenID,
		invoiceSvc:      p.InvoiceSvc,
		customerSvc:     p.CustomerSvc,
		storeSvc:        p.StoreSvc,
		taxSvc:          p.TaxSvc,
		subscriptionSvc: p.SubscriptionSvc,
		tierResolver:    p.TierResolver,
		publicLimiter:   p.PublicLimiter,
	}

	svc.registerAPIRoutes()
	svc.registerAdminRoutes()
	svc.registerPublicRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AuthRequired())

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/status", s.UpdateInvoiceStatus)
	api.GET("/invoices/:id/render", s.RenderInvoice)
	api.GET("/invoices/:id/pdf", s.ExportInvoicePDF)

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	// -------- Store profile --------
	api.GET("/store/settings", s.GetStoreSettings)
	api.PUT("/store/settings", s.UpdateStoreSettings)

	// -------- Tax preference --------
	api.GET("/store/tax", s.GetTaxPreference)
	api.PUT("/store/tax", s.UpdateTaxPreference)

	// -------- Templates --------
	api.GET("/templates", s.ListTemplates)

	// -------- Subscription --------
	api.GET("/subscription", s.GetCurrentSubscription)
	api.POST("/subscription/transactions", s.CreateUpgradeTransaction)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.AuthRequired(), s.AdminRequired())

	admin.GET("/stores", s.AdminListStores)
	admin.POST("/stores/:id/active", s.AdminSetStoreActive)
	admin.GET("/subscriptions", s.AdminListSubscriptions)
	admin.GET("/transactions", s.AdminListTransactions)
	admin.POST("/transactions/:id/review", s.AdminReviewTransaction)
}

func (s *Server) registerPublicRoutes() {
	// Shared invoice links; no authentication, but throttled so tokens
	// cannot be enumerated.
	s.engine.GET("/p/invoices/:token", s.PublicRateLimit(), s.PublicInvoice)
}
