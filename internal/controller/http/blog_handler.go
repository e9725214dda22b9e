package http

import (
	"net/http"
	"strconv"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

type CreateBlogPostRequest struct {
	Title       string      `json:"title" binding:"required"`
	Topic       string      `json:"topic"`
	Author      string      `json:"author"`
	PublishDate entity.Date `json:"publish_date" binding:"required"`
	Link        string      `json:"link"`
	Status      string      `json:"status"`
}

type UpdateBlogPostRequest struct {
	Title       *string      `json:"title"`
	Topic       *string      `json:"topic"`
	Author      *string      `json:"author"`
	PublishDate *entity.Date `json:"publish_date"`
	Link        *string      `json:"link"`
	Status      *string      `json:"status"`
}

// CreateBlogPost godoc
// @Summary      Schedule a blog post
// @Description  Create a blog post entry. publish_date must fall on a Wednesday.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        post body CreateBlogPostRequest true "Blog post fields"
// @Success      201  {object}  entity.BlogPost
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog-posts [post]
func (h *BlogHandler) CreateBlogPost(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.CreateBlogPost(usecase.CreateBlogPostInput{
		Title:       req.Title,
		Topic:       req.Topic,
		Author:      req.Author,
		PublishDate: req.PublishDate,
		Link:        req.Link,
		Status:      req.Status,
	}, c.GetString("actor"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// ListBlogPosts godoc
// @Summary      List blog posts
// @Description  List scheduled blog posts, optionally restricted to a publish-date range.
// @Tags         blog
// @Produce      json
// @Param        startDate query string false "Inclusive lower bound (yyyy-mm-dd)"
// @Param        endDate query string false "Inclusive upper bound (yyyy-mm-dd)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /blog-posts [get]
func (h *BlogHandler) ListBlogPosts(c *gin.Context) {
	var startDate, endDate *entity.Date

	if raw := c.Query("startDate"); raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		startDate = &date
	}
	if raw := c.Query("endDate"); raw != "" {
		date, err := entity.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		endDate = &date
	}

	posts, err := h.blogUseCase.ListBlogPosts(startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GetBlogPost godoc
// @Summary      Get one blog post
// @Tags         blog
// @Produce      json
// @Param        id path int true "Blog post ID"
// @Success      200  {object}  entity.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /blog-posts/{id} [get]
func (h *BlogHandler) GetBlogPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog post id"})
		return
	}

	post, err := h.blogUseCase.GetBlogPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// UpdateBlogPost godoc
// @Summary      Update a blog post
// @Description  Partial update. A changed publish_date must still be a Wednesday.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Blog post ID"
// @Param        post body UpdateBlogPostRequest true "Fields to change"
// @Success      200  {object}  entity.BlogPost
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blog-posts/{id} [put]
func (h *BlogHandler) UpdateBlogPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog post id"})
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.UpdateBlogPost(id, usecase.UpdateBlogPostInput{
		Title:       req.Title,
		Topic:       req.Topic,
		Author:      req.Author,
		PublishDate: req.PublishDate,
		Link:        req.Link,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeleteBlogPost godoc
// @Summary      Delete a blog post
// @Tags         blog
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Blog post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blog-posts/{id} [delete]
func (h *BlogHandler) DeleteBlogPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog post id"})
		return
	}

	if err := h.blogUseCase.DeleteBlogPost(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
