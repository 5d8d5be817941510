package handlers

import (
	"net/http"

	"agripulse-terminal/internal/api/models"
	"agripulse-terminal/internal/engine"

	"github.com/gin-gonic/gin"
)

// TradeHandler exposes the trade simulation surface.
type TradeHandler struct {
	Engine *engine.Engine
}

// NewTradeHandler creates a new trade handler.
func NewTradeHandler(eng *engine.Engine) *TradeHandler {
	return &TradeHandler{Engine: eng}
}

// UpdateParams handles POST /api/v1/trade/params. Only the fields present in
// the request are applied; the rest of the form is left unchanged.
func (h *TradeHandler) UpdateParams(c *gin.Context) {
	var req models.TradeParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if req.Commodity != nil {
		h.Engine.SetTradeCommodity(*req.Commodity)
	}
	if req.Source != nil {
		h.Engine.SetTradeSource(*req.Source)
	}
	if req.Destination != nil {
		h.Engine.SetTradeDestination(*req.Destination)
	}
	if req.QtyTonnes != nil {
		if *req.QtyTonnes <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_QUANTITY",
					Message: "qty_tonnes must be positive",
				},
			})
			return
		}
		h.Engine.SetTradeQty(*req.QtyTonnes)
	}
	if req.Domestic != nil {
		h.Engine.SetTradeDomestic(*req.Domestic)
	}

	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}

// Simulate handles POST /api/v1/trade/simulate.
func (h *TradeHandler) Simulate(c *gin.Context) {
	h.Engine.RunSimulation()
	c.JSON(http.StatusOK, models.AckResponse{Accepted: true})
}
