package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	budgetdomain "github.com/orcaflow/orcaflow/internal/budget/domain"
	companydomain "github.com/orcaflow/orcaflow/internal/company/domain"
	"github.com/orcaflow/orcaflow/internal/config"
	documentdomain "github.com/orcaflow/orcaflow/internal/document/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(run),
)

func NewEngine(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	companySvc  companydomain.Service
	budgetSvc   budgetdomain.Service
	documentSvc documentdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	CompanySvc  companydomain.Service
	BudgetSvc   budgetdomain.Service
	DocumentSvc documentdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("http.server"),
		companySvc:  p.CompanySvc,
		budgetSvc:   p.BudgetSvc,
		documentSvc: p.DocumentSvc,
	}
}

func RegisterRoutes(s *Server) {
	api := s.engine.Group("/api")

	api.GET("/companies", s.ListCompanies)
	api.POST("/companies", s.CreateCompany)
	api.GET("/companies/:id", s.GetCompanyByID)
	api.PUT("/companies/:id", s.UpdateCompany)
	api.DELETE("/companies/:id", s.DeleteCompany)

	api.GET("/budgets", s.ListBudgets)
	api.POST("/budgets", s.CreateBudget)
	api.GET("/budgets/:id", s.GetBudgetByID)
	api.PUT("/budgets/:id", s.UpdateBudget)
	api.DELETE("/budgets/:id", s.DeleteBudget)

	api.GET("/budgets/:id/alternatives", s.ListAlternativeBudgets)
	api.POST("/budgets/:id/alternatives", s.GenerateAlternativeBudgets)

	api.GET("/budgets/:id/document", s.RenderBudgetDocument)
	api.GET("/budgets/:id/document.pdf", s.DownloadBudgetPDF)

	api.GET("/templates", s.ListTemplates)
	api.GET("/templates/:name", s.GetTemplateByName)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
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
