package http

import (
	"net/http"
	"strconv"

	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	Text            string `json:"comment_text" binding:"required"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

type UpdateCommentRequest struct {
	Text     *string `json:"comment_text"`
	Resolved *bool   `json:"resolved"`
}

// CreateComment godoc
// @Summary      Comment on a content item
// @Description  Add a comment or, with parent_comment_id, a reply. The author is the acting user.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Content ID"
// @Param        comment body CreateCommentRequest true "Comment fields"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.AddComment(contentID, req.Text, req.ParentCommentID, c.GetString("actor"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ListComments godoc
// @Summary      List a content item's comment thread
// @Description  Returns top-level comments in creation order, each with its replies.
// @Tags         comments
// @Produce      json
// @Param        id path int true "Content ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /content/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return
	}

	thread, err := h.commentUseCase.ListThread(contentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": thread})
}

// UpdateComment godoc
// @Summary      Edit or resolve a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Comment ID"
// @Param        comment body UpdateCommentRequest true "Fields to change"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.UpdateComment(id, req.Text, req.Resolved)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        X-Actor header string true "Acting user"
// @Param        id path int true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.commentUseCase.DeleteComment(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
