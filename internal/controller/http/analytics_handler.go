package http

import (
	"net/http"

	"marketing-hub/internal/provider"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

func parseRangeParam(c *gin.Context) (provider.Range, bool) {
	rng, err := provider.ParseRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return rng, true
}

func propertyParam(c *gin.Context) string {
	property := c.Query("property")
	if property == "" {
		property = "main"
	}
	return property
}

// GetOverview godoc
// @Summary      Aggregated analytics
// @Description  Fans out to every provider and returns what came back; failed providers appear as error strings next to nil sections.
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window: 7d, 30d, 90d, or 365d (default 30d)"
// @Param        property query string false "Page-analytics property: main, funnel, or checkout (default main)"
// @Success      200  {object}  usecase.AnalyticsOverview
// @Failure      400  {object}  map[string]string
// @Router       /analytics [get]
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	overview, err := h.analyticsUseCase.Overview(c.Request.Context(), rng, propertyParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetPages godoc
// @Summary      Page analytics
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window (default 30d)"
// @Param        property query string false "Property (default main)"
// @Success      200  {object}  provider.PageReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/pages [get]
func (h *AnalyticsHandler) GetPages(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	report, err := h.analyticsUseCase.Pages(c.Request.Context(), rng, propertyParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetInstagram godoc
// @Summary      Instagram analytics
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window (default 30d)"
// @Success      200  {object}  provider.SocialReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/instagram [get]
func (h *AnalyticsHandler) GetInstagram(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	report, err := h.analyticsUseCase.Instagram(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetFacebook godoc
// @Summary      Facebook analytics
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window (default 30d)"
// @Success      200  {object}  provider.SocialReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/facebook [get]
func (h *AnalyticsHandler) GetFacebook(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	report, err := h.analyticsUseCase.Facebook(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCRM godoc
// @Summary      CRM analytics
// @Description  Contact metrics from the CRM plus the three most recently sent campaigns on record.
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window (default 30d)"
// @Success      200  {object}  usecase.CRMView
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/crm [get]
func (h *AnalyticsHandler) GetCRM(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsUseCase.CRM(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetSearch godoc
// @Summary      Search performance
// @Tags         analytics
// @Produce      json
// @Param        range query string false "Window (default 30d)"
// @Success      200  {object}  provider.SearchReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /analytics/search [get]
func (h *AnalyticsHandler) GetSearch(c *gin.Context) {
	rng, ok := parseRangeParam(c)
	if !ok {
		return
	}

	report, err := h.analyticsUseCase.Search(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
