package handlers

import (
	"net/http"

	"sofr-carry-backtest/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests.
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name: "second-carry",
			Description: "Holds the second-nearest contract on the curve. " +
				"Enters into the second contract (never the front) and rolls out " +
				"whenever the held contract becomes the front.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
