package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gantry/internal/shared/logger"
	"gantry/internal/shared/utils"
)

// StatsHandler serves the rolling per-minute usage window.
type StatsHandler struct {
	statsWindowUC statsWindowReader
	logger        logger.Interface
}

func NewStatsHandler(statsWindowUC statsWindowReader) *StatsHandler {
	return &StatsHandler{
		statsWindowUC: statsWindowUC,
		logger:        logger.NewLogger(),
	}
}

// GetStats returns the most recent usage buckets, newest first. The optional
// minutes query parameter selects the window size.
func (h *StatsHandler) GetStats(c *gin.Context) {
	minutes := 0
	if raw := c.Query("minutes"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "minutes must be a positive integer")
			return
		}
		minutes = n
	}

	window, err := h.statsWindowUC.Execute(c.Request.Context(), minutes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, window)
}
