package http

import (
	"net/http"
	"strconv"

	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TrackerHandler struct {
	trackerUseCase usecase.TrackerUseCase
	logger         *logger.Logger
}

func NewTrackerHandler(trackerUseCase usecase.TrackerUseCase, logger *logger.Logger) *TrackerHandler {
	return &TrackerHandler{
		trackerUseCase: trackerUseCase,
		logger:         logger,
	}
}

// GetTracker godoc
// @Summary      Weekly content tracker
// @Description  Rolls up blog, LinkedIn, and social lanes per week, starting at the current week's Monday. A week that fails to load degrades to empty lanes with an error note.
// @Tags         tracker
// @Produce      json
// @Param        weeks query int false "Number of weeks (default 8)"
// @Param        assignee query string false "LinkedIn lane assignee (default Beth)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /content-tracker [get]
func (h *TrackerHandler) GetTracker(c *gin.Context) {
	weeks := 0
	if raw := c.Query("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weeks"})
			return
		}
		weeks = parsed
	}

	rollups, err := h.trackerUseCase.Snapshot(weeks, c.Query("assignee"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracker": rollups})
}
