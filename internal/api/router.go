package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-breeze-dashboard/internal/api/handlers"
	"github.com/roksva123/go-breeze-dashboard/internal/api/middleware"
)

// LegacyDashboardPath is where the dashboard front end used to find its data.
const LegacyDashboardPath = "/.netlify/functions/breeze-api"

// NewRouter wires the dashboard routes. The handler may be customised by the
// caller before routing; nil means NewDashboardHandler(load).
func NewRouter(load handlers.ConfigLoader, dashboard *handlers.DashboardHandler) *gin.Engine {
	if dashboard == nil {
		dashboard = handlers.NewDashboardHandler(load)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type"},
		ExposeHeaders:             []string{middleware.RequestIDHeader},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.GET("/healthz", handlers.Health)
	r.Any(LegacyDashboardPath, dashboard.GetDashboard)

	api := r.Group("/api/v1")
	{
		api.Any("/dashboard", dashboard.GetDashboard)
	}

	return r
}
