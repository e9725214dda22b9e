package usecase

import (
	"fmt"
	"strings"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"
	"marketing-hub/pkg/queue"
)

type CommentUseCase interface {
	AddComment(contentID int64, text string, parentID *int64, actor string) (*entity.Comment, error)
	ListThread(contentID int64) ([]*entity.CommentThread, error)
	UpdateComment(id int64, text *string, resolved *bool) (*entity.Comment, error)
	DeleteComment(id int64) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	contentRepo persistent.ContentRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	contentRepo persistent.ContentRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(contentID int64, text string, parentID *int64, actor string) (*entity.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment_text is required", ErrInvalidInput)
	}
	if _, err := uc.contentRepo.GetByID(contentID); err != nil {
		return nil, notFound(err)
	}
	if parentID != nil {
		parent, err := uc.commentRepo.GetByID(*parentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent comment %d", ErrNotFound, *parentID)
		}
		if parent.ContentID != contentID {
			return nil, fmt.Errorf("%w: parent comment belongs to another content item", ErrInvalidInput)
		}
	}

	comment := &entity.Comment{
		ContentID:       contentID,
		AuthorName:      actor,
		Text:            text,
		ParentCommentID: parentID,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Notification fanout is best effort; a broker outage never fails the
	// comment itself.
	if uc.queueClient != nil {
		err := uc.queueClient.PublishCommentEvent(queue.CommentEvent{
			CommentID:  comment.ID,
			ContentID:  comment.ContentID,
			AuthorName: comment.AuthorName,
			Text:       comment.Text,
			ParentID:   comment.ParentCommentID,
			CreatedAt:  comment.CreatedAt,
		})
		if err != nil {
			uc.logger.Warn("failed to publish comment event for comment %d: %v", comment.ID, err)
		}
	}

	return comment, nil
}

func (uc *commentUseCase) ListThread(contentID int64) ([]*entity.CommentThread, error) {
	if _, err := uc.contentRepo.GetByID(contentID); err != nil {
		return nil, notFound(err)
	}
	comments, err := uc.commentRepo.ListByContentID(contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return entity.ThreadComments(comments), nil
}

func (uc *commentUseCase) UpdateComment(id int64, text *string, resolved *bool) (*entity.Comment, error) {
	fields := map[string]interface{}{}
	if text != nil {
		if strings.TrimSpace(*text) == "" {
			return nil, fmt.Errorf("%w: comment_text cannot be empty", ErrInvalidInput)
		}
		fields["comment_text"] = *text
	}
	if resolved != nil {
		fields["resolved"] = *resolved
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	fields["updated_at"] = time.Now()

	comment, err := uc.commentRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, notFound(err)
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(id int64) error {
	if err := uc.commentRepo.Delete(id); err != nil {
		return notFound(err)
	}
	return nil
}
