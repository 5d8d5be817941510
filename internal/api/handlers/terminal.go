package handlers

import (
	"net/http"

	"agripulse-terminal/internal/api/models"
	"agripulse-terminal/internal/engine"
	"agripulse-terminal/internal/view"

	"github.com/gin-gonic/gin"
)

// TerminalHandler exposes the engine's analytics surface.
type TerminalHandler struct {
	Engine *engine.Engine
}

// NewTerminalHandler creates a new terminal handler.
func NewTerminalHandler(eng *engine.Engine) *TerminalHandler {
	return &TerminalHandler{Engine: eng}
}

// GetState handles GET /api/v1/state. It returns the per-query request
// states plus derived views for whatever payloads are currently held.
func (h *TerminalHandler) GetState(c *gin.Context) {
	snap := h.Engine.Snapshot()
	resp := models.StateResponse{State: snap}
	if snap.Analytics.Status == engine.StatusSuccess {
		v := view.BuildTerminal(snap.Analytics.Data)
		resp.Terminal = &v
	}
	if snap.Dashboard.Status == engine.StatusSuccess {
		v := view.BuildDashboard(snap.Dashboard.Data)
		resp.Dashboard = &v
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitCommodity handles POST /api/v1/query/commodity.
func (h *TerminalHandler) SubmitCommodity(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if !h.Engine.SubmitCommodity(req.Text) {
		c.JSON(http.StatusOK, models.AckResponse{Accepted: false, Reason: "empty commodity"})
		return
	}
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}

// SubmitLocation handles POST /api/v1/query/location.
func (h *TerminalHandler) SubmitLocation(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if !h.Engine.SubmitLocation(req.Text) {
		c.JSON(http.StatusOK, models.AckResponse{Accepted: false, Reason: "empty location"})
		return
	}
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}

// SetHorizon handles POST /api/v1/query/horizon. The horizon is committed
// (clamped to [0,120]) without fetching; Generate fetches.
func (h *TerminalHandler) SetHorizon(c *gin.Context) {
	var req models.HorizonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	h.Engine.SetHorizon(req.Days)
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}

// Generate handles POST /api/v1/generate: manual refresh with the current
// committed snapshot.
func (h *TerminalHandler) Generate(c *gin.Context) {
	h.Engine.Generate()
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}

// SubmitDashboardCity handles POST /api/v1/dashboard/city.
func (h *TerminalHandler) SubmitDashboardCity(c *gin.Context) {
	var req models.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if !h.Engine.SubmitDashboardCity(req.Text) {
		c.JSON(http.StatusOK, models.AckResponse{Accepted: false, Reason: "empty city"})
		return
	}
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}
