package http

import (
	"net/http"
	"strconv"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignUseCase usecase.CampaignUseCase
	logger          *logger.Logger
}

func NewCampaignHandler(campaignUseCase usecase.CampaignUseCase, logger *logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
		logger:          logger,
	}
}

type CreateCampaignRequest struct {
	Name         string      `json:"name" binding:"required"`
	SendDate     entity.Date `json:"send_date" binding:"required"`
	Delivered    int         `json:"delivered"`
	Opened       float64     `json:"opened"`
	Clicked      float64     `json:"clicked"`
	Bounce       int         `json:"bounce"`
	Unsubscribed int         `json:"unsubscribed"`
	Spam         int         `json:"spam"`
	RawOpens     *int        `json:"raw_opens"`
	RawClicks    *int        `json:"raw_clicks"`
	ABSubjectA   string      `json:"ab_subject_a"`
	ABSubjectB   string      `json:"ab_subject_b"`
	ABWinner     string      `json:"ab_winner"`
	ABOpenedA    *float64    `json:"ab_opened_a"`
	ABOpenedB    *float64    `json:"ab_opened_b"`
	ABClickedA   *float64    `json:"ab_clicked_a"`
	ABClickedB   *float64    `json:"ab_clicked_b"`
	ABOpensA     *int        `json:"ab_opens_a"`
	ABOpensB     *int        `json:"ab_opens_b"`
	Notes        string      `json:"notes"`
}

type UpdateCampaignRequest struct {
	Name         *string      `json:"name"`
	SendDate     *entity.Date `json:"send_date"`
	Delivered    *int         `json:"delivered"`
	Opened       *float64     `json:"opened"`
	Clicked      *float64     `json:"clicked"`
	Bounce       *int         `json:"bounce"`
	Unsubscribed *int         `json:"unsubscribed"`
	Spam         *int         `json:"spam"`
	RawOpens     *int         `json:"raw_opens"`
	RawClicks    *int         `json:"raw_clicks"`
	ABSubjectA   *string      `json:"ab_subject_a"`
	ABSubjectB   *string      `json:"ab_subject_b"`
	ABWinner     *string      `json:"ab_winner"`
	ABOpenedA    *float64     `json:"ab_opened_a"`
	ABOpenedB    *float64     `json:"ab_opened_b"`
	ABClickedA   *float64     `json:"ab_clicked_a"`
	ABClickedB   *float64     `json:"ab_clicked_b"`
	ABOpensA     *int         `json:"ab_opens_a"`
	ABOpensB     *int         `json:"ab_opens_b"`
	Notes        *string      `json:"notes"`
}

type CleanupDuplicatesRequest struct {
	Name     string      `json:"name" binding:"required"`
	SendDate entity.Date `json:"send_date" binding:"required"`
}

// CreateCampaign godoc
// @Summary      Record an email campaign
// @Description  Create a campaign record. Open/click percentages are recomputed from raw counts when present.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        campaign body CreateCampaignRequest true "Campaign fields"
// @Success      201  {object}  entity.Campaign
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignUseCase.CreateCampaign(usecase.CreateCampaignInput{
		Name:         req.Name,
		SendDate:     req.SendDate,
		Delivered:    req.Delivered,
		Opened:       req.Opened,
		Clicked:      req.Clicked,
		Bounce:       req.Bounce,
		Unsubscribed: req.Unsubscribed,
		Spam:         req.Spam,
		RawOpens:     req.RawOpens,
		RawClicks:    req.RawClicks,
		ABSubjectA:   req.ABSubjectA,
		ABSubjectB:   req.ABSubjectB,
		ABWinner:     req.ABWinner,
		ABOpenedA:    req.ABOpenedA,
		ABOpenedB:    req.ABOpenedB,
		ABClickedA:   req.ABClickedA,
		ABClickedB:   req.ABClickedB,
		ABOpensA:     req.ABOpensA,
		ABOpensB:     req.ABOpensB,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// ListCampaigns godoc
// @Summary      List campaigns
// @Description  List campaign records, newest send date first.
// @Tags         campaigns
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.campaignUseCase.ListCampaigns()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
		"count":     len(campaigns),
	})
}

// GetCampaign godoc
// @Summary      Get one campaign
// @Tags         campaigns
// @Produce      json
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  entity.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	campaign, err := h.campaignUseCase.GetCampaign(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// UpdateCampaign godoc
// @Summary      Update a campaign
// @Description  Partial update; submitted percentages are overridden by rates recomputed from raw counts.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Campaign ID"
// @Param        campaign body UpdateCampaignRequest true "Fields to change"
// @Success      200  {object}  entity.Campaign
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaignUseCase.UpdateCampaign(id, usecase.UpdateCampaignInput{
		Name:         req.Name,
		SendDate:     req.SendDate,
		Delivered:    req.Delivered,
		Opened:       req.Opened,
		Clicked:      req.Clicked,
		Bounce:       req.Bounce,
		Unsubscribed: req.Unsubscribed,
		Spam:         req.Spam,
		RawOpens:     req.RawOpens,
		RawClicks:    req.RawClicks,
		ABSubjectA:   req.ABSubjectA,
		ABSubjectB:   req.ABSubjectB,
		ABWinner:     req.ABWinner,
		ABOpenedA:    req.ABOpenedA,
		ABOpenedB:    req.ABOpenedB,
		ABClickedA:   req.ABClickedA,
		ABClickedB:   req.ABClickedB,
		ABOpensA:     req.ABOpensA,
		ABOpensB:     req.ABOpensB,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// DeleteCampaign godoc
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	if err := h.campaignUseCase.DeleteCampaign(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

// ListDuplicates godoc
// @Summary      List duplicate campaign groups
// @Description  Groups campaigns sharing (name, send_date); only groups with 2+ members are returned, newest member first.
// @Tags         campaigns
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /campaigns/duplicates [get]
func (h *CampaignHandler) ListDuplicates(c *gin.Context) {
	groups, err := h.campaignUseCase.FindDuplicateGroups()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"duplicates": groups,
		"count":      len(groups),
	})
}

// CleanupDuplicates godoc
// @Summary      Remove duplicate campaigns
// @Description  Deletes every campaign with the given name and send_date except the newest, in one transaction.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        group body CleanupDuplicatesRequest true "Duplicate group key"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/duplicates/cleanup [post]
func (h *CampaignHandler) CleanupDuplicates(c *gin.Context) {
	var req CleanupDuplicatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed, err := h.campaignUseCase.CleanupDuplicates(req.Name, req.SendDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Duplicate campaigns removed",
		"removed": removed,
	})
}
