package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/auth"
	"github.com/jfletch/haul-analytics-go/internal/config"
	"github.com/jfletch/haul-analytics-go/internal/handler"
	"github.com/jfletch/haul-analytics-go/internal/middleware"
	"github.com/jfletch/haul-analytics-go/internal/repository"
	"github.com/jfletch/haul-analytics-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	loadRepo := repository.NewLoadRepository(db)
	fuelRepo := repository.NewFuelStopRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	authService := auth.NewService(cfg.JWTSecret, cfg.AdminAPIKey, cfg.TokenTTL)

	loadHandler := handler.NewLoadHandler(service.NewLoadService(loadRepo))
	analyticsHandler := handler.NewAnalyticsHandler(service.NewAnalyticsService(loadRepo, fuelRepo, expenseRepo))
	ingestHandler := handler.NewIngestHandler(service.NewIngestService(db))
	authHandler := handler.NewAuthHandler(authService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Haul Analytics API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.POST("/auth/token", authHandler.IssueToken)

		loads := api.Group("/loads")
		{
			loads.GET("", loadHandler.GetLoads)
			loads.GET("/:id", loadHandler.GetLoadByID)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/profitability", analyticsHandler.GetProfitability)
			reports.GET("/routes", analyticsHandler.GetRoutes)
			reports.GET("/expenses/monthly", analyticsHandler.GetMonthlyExpenses)
			reports.GET("/expenses/details", analyticsHandler.GetExpenseDetails)
			reports.GET("/trips/representative", analyticsHandler.GetRepresentativeTrips)
			reports.GET("/summary", analyticsHandler.GetSummary)
			reports.GET("/export", analyticsHandler.ExportReport)
		}

		api.POST("/ingest", middleware.RequireAuth(authService), ingestHandler.ReplaceDataset)
	}

	return r
}
