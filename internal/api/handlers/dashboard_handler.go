package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-breeze-dashboard/internal/api/middleware"
	"github.com/roksva123/go-breeze-dashboard/internal/config"
	"github.com/roksva123/go-breeze-dashboard/internal/model"
	"github.com/roksva123/go-breeze-dashboard/internal/service"
)

// ConfigLoader is called once per request so edits to the environment or the
// config file apply without a restart.
type ConfigLoader func() (*config.Config, error)

// APIFactory builds the Breeze client for one request.
type APIFactory func(cfg *config.Config) service.BreezeAPI

const fatalDiagnostic = "Fatal error occurred in dashboard handler"

type DashboardHandler struct {
	LoadConfig ConfigLoader
	NewAPI     APIFactory
}

func NewDashboardHandler(load ConfigLoader) *DashboardHandler {
	return &DashboardHandler{
		LoadConfig: load,
		NewAPI:     NewBreezeAPI,
	}
}

// NewBreezeAPI is the default APIFactory.
func NewBreezeAPI(cfg *config.Config) service.BreezeAPI {
	return service.NewBreezeClient(cfg.BreezeBaseURL, cfg.BreezeAPIKey, cfg.APITimeout)
}

// GetDashboard serves the whole dashboard payload. Any method other than
// OPTIONS runs the aggregation.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}

	lg := middleware.Logger(c)
	defer func() {
		if r := recover(); r != nil {
			lg.Error("dashboard handler panicked", "panic", r)
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
				Error:     fmt.Sprint(r),
				DebugInfo: []string{fatalDiagnostic},
			})
		}
	}()

	cfg, err := h.LoadConfig()
	if err != nil {
		lg.Error("failed to load config", "error", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:     err.Error(),
			DebugInfo: []string{fatalDiagnostic},
		})
		return
	}

	if !cfg.HasAPIKey() {
		lg.Warn("breeze api key not configured")
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:     "API key not configured. Please set BREEZE_API_KEY in the environment or config file.",
			DebugInfo: []string{"API key not set in configuration"},
		})
		return
	}

	svc := service.NewDashboardService(h.NewAPI(cfg), cfg, lg)
	c.JSON(http.StatusOK, svc.Build(c.Request.Context()))
}
