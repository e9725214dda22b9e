package http

import (
	"net/http"
	"strconv"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type CreateContentRequest struct {
	PostDate     entity.Date `json:"post_date" binding:"required"`
	ContentType  string      `json:"content_type"`
	Platform     string      `json:"platform"`
	ContentNeeds string      `json:"content_needs"`
	AssetLink    string      `json:"asset_link"`
	Caption      string      `json:"caption"`
	Status       string      `json:"status"`
	AssignedTo   string      `json:"assigned_to"`
}

type UpdateContentRequest struct {
	PostDate     *entity.Date `json:"post_date"`
	ContentType  *string      `json:"content_type"`
	Platform     *string      `json:"platform"`
	ContentNeeds *string      `json:"content_needs"`
	AssetLink    *string      `json:"asset_link"`
	Caption      *string      `json:"caption"`
	Status       *string      `json:"status"`
	AssignedTo   *string      `json:"assigned_to"`
}

// CreateContent godoc
// @Summary      Create a calendar item
// @Description  Create a social content item. week_of is derived from post_date; any submitted value is ignored.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        content body CreateContentRequest true "Content fields"
// @Success      201  {object}  entity.SocialContent
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.contentUseCase.CreateContent(usecase.CreateContentInput{
		PostDate:     req.PostDate,
		ContentType:  req.ContentType,
		Platform:     req.Platform,
		ContentNeeds: req.ContentNeeds,
		AssetLink:    req.AssetLink,
		Caption:      req.Caption,
		Status:       req.Status,
		AssignedTo:   req.AssignedTo,
	}, c.GetString("actor"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"content": content})
}

// ListContent godoc
// @Summary      List calendar items
// @Description  List social content, optionally filtered by date range, status, and platform.
// @Tags         content
// @Produce      json
// @Param        startDate query string false "Inclusive lower bound (yyyy-mm-dd)"
// @Param        endDate query string false "Inclusive upper bound (yyyy-mm-dd)"
// @Param        status query string false "Status filter"
// @Param        platform query string false "Platform filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	var filter entity.ContentFilter

	if raw := c.Query("startDate"); raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		filter.StartDate = &date
	}
	if raw := c.Query("endDate"); raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		filter.EndDate = &date
	}
	filter.Status = entity.ContentStatus(c.Query("status"))
	filter.Platform = entity.Platform(c.Query("platform"))

	content, err := h.contentUseCase.ListContent(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"count":   len(content),
	})
}

// GetContent godoc
// @Summary      Get one calendar item
// @Tags         content
// @Produce      json
// @Param        id path int true "Content ID"
// @Success      200  {object}  entity.SocialContent
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	content, err := h.contentUseCase.GetContent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// UpdateContent godoc
// @Summary      Update a calendar item
// @Description  Partial update: only fields present in the payload change. A new post_date re-derives week_of.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Content ID"
// @Param        content body UpdateContentRequest true "Fields to change"
// @Success      200  {object}  entity.SocialContent
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.contentUseCase.UpdateContent(id, usecase.UpdateContentInput{
		PostDate:     req.PostDate,
		ContentType:  req.ContentType,
		Platform:     req.Platform,
		ContentNeeds: req.ContentNeeds,
		AssetLink:    req.AssetLink,
		Caption:      req.Caption,
		Status:       req.Status,
		AssignedTo:   req.AssignedTo,
	}, c.GetString("actor"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// DeleteContent godoc
// @Summary      Delete a calendar item
// @Description  Delete a content item and, through the schema, its comments.
// @Tags         content
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Content ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	if err := h.contentUseCase.DeleteContent(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// RepairWeeks godoc
// @Summary      Recompute week_of for every content row
// @Description  Admin repair: re-derives week_of from post_date across the calendar. Idempotent.
// @Tags         admin
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/fix-weeks [post]
func (h *ContentHandler) RepairWeeks(c *gin.Context) {
	updated, err := h.contentUseCase.RepairWeeks()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Week assignments repaired",
		"updated": updated,
	})
}

// UploadAsset godoc
// @Summary      Upload a content asset
// @Description  Store a form file and return its URL for use as asset_link.
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        file formData file true "Asset file"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /assets [post]
func (h *ContentHandler) UploadAsset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := h.contentUseCase.UploadAsset(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteAsset godoc
// @Summary      Delete a content asset
// @Description  Remove an uploaded asset by its storage key.
// @Tags         assets
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        key path string true "Asset key"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /assets/{key} [delete]
func (h *ContentHandler) DeleteAsset(c *gin.Context) {
	key := c.Param("key")

	if err := h.contentUseCase.DeleteAsset(key); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted"})
}
