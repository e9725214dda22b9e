package usecase

import (
	"fmt"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"
)

type CreateBlogPostInput struct {
	Title       string
	Topic       string
	Author      string
	PublishDate entity.Date
	Link        string
	Status      string
}

type UpdateBlogPostInput struct {
	Title       *string
	Topic       *string
	Author      *string
	PublishDate *entity.Date
	Link        *string
	Status      *string
}

type BlogUseCase interface {
	CreateBlogPost(input CreateBlogPostInput, actor string) (*entity.BlogPost, error)
	GetBlogPost(id int64) (*entity.BlogPost, error)
	ListBlogPosts(startDate, endDate *entity.Date) ([]*entity.BlogPost, error)
	UpdateBlogPost(id int64, input UpdateBlogPostInput) (*entity.BlogPost, error)
	DeleteBlogPost(id int64) error
}

type blogUseCase struct {
	blogRepo persistent.BlogPostRepository
	logger   *logger.Logger
}

func NewBlogUseCase(blogRepo persistent.BlogPostRepository, logger *logger.Logger) BlogUseCase {
	return &blogUseCase{blogRepo: blogRepo, logger: logger}
}

func (uc *blogUseCase) CreateBlogPost(input CreateBlogPostInput, actor string) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.PublishDate.IsZero() {
		return nil, fmt.Errorf("%w: publish_date is required", ErrInvalidInput)
	}
	// Blog posts go out on Wednesdays.
	if !entity.IsWednesday(input.PublishDate) {
		return nil, fmt.Errorf("%w: publish_date %s is not a Wednesday", ErrInvalidInput, input.PublishDate)
	}

	status := entity.BlogStatus(input.Status)
	if input.Status == "" {
		status = entity.BlogStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}

	author := input.Author
	if author == "" {
		author = actor
	}

	post := &entity.BlogPost{
		Title:       input.Title,
		Topic:       input.Topic,
		Author:      author,
		PublishDate: input.PublishDate,
		Link:        input.Link,
		Status:      status,
	}
	if err := uc.blogRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (uc *blogUseCase) GetBlogPost(id int64) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return post, nil
}

func (uc *blogUseCase) ListBlogPosts(startDate, endDate *entity.Date) ([]*entity.BlogPost, error) {
	return uc.blogRepo.List(startDate, endDate)
}

func (uc *blogUseCase) UpdateBlogPost(id int64, input UpdateBlogPostInput) (*entity.BlogPost, error) {
	fields := map[string]interface{}{}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		fields["title"] = *input.Title
	}
	if input.Topic != nil {
		fields["topic"] = *input.Topic
	}
	if input.Author != nil {
		fields["author"] = *input.Author
	}
	if input.PublishDate != nil {
		if !entity.IsWednesday(*input.PublishDate) {
			return nil, fmt.Errorf("%w: publish_date %s is not a Wednesday", ErrInvalidInput, *input.PublishDate)
		}
		fields["publish_date"] = *input.PublishDate
	}
	if input.Link != nil {
		fields["link"] = *input.Link
	}
	if input.Status != nil {
		if !entity.BlogStatus(*input.Status).Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		fields["status"] = *input.Status
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	fields["updated_at"] = time.Now()

	post, err := uc.blogRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, notFound(err)
	}
	return post, nil
}

func (uc *blogUseCase) DeleteBlogPost(id int64) error {
	if err := uc.blogRepo.Delete(id); err != nil {
		return notFound(err)
	}
	return nil
}
