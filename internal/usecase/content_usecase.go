package usecase

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"
	"marketing-hub/pkg/s3"

	"github.com/google/uuid"
)

// CreateContentInput carries the writable fields of a new calendar item.
// WeekOf is always derived from PostDate; a client-supplied value is ignored.
type CreateContentInput struct {
	PostDate     entity.Date
	ContentType  string
	Platform     string
	ContentNeeds string
	AssetLink    string
	Caption      string
	Status       string
	AssignedTo   string
}

// UpdateContentInput holds partial updates. Nil fields stay untouched.
type UpdateContentInput struct {
	PostDate     *entity.Date
	ContentType  *string
	Platform     *string
	ContentNeeds *string
	AssetLink    *string
	Caption      *string
	Status       *string
	AssignedTo   *string
}

type ContentUseCase interface {
	CreateContent(input CreateContentInput, actor string) (*entity.SocialContent, error)
	GetContent(id int64) (*entity.SocialContent, error)
	ListContent(filter entity.ContentFilter) ([]*entity.SocialContent, error)
	UpdateContent(id int64, input UpdateContentInput, actor string) (*entity.SocialContent, error)
	DeleteContent(id int64) error
	RepairWeeks() (int, error)
	UploadAsset(file *multipart.FileHeader) (string, error)
	DeleteAsset(key string) error
}

type contentUseCase struct {
	contentRepo persistent.ContentRepository
	s3Client    *s3.Client
	logger      *logger.Logger
}

func NewContentUseCase(
	contentRepo persistent.ContentRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		contentRepo: contentRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

func (uc *contentUseCase) CreateContent(input CreateContentInput, actor string) (*entity.SocialContent, error) {
	if input.PostDate.IsZero() {
		return nil, fmt.Errorf("%w: post_date is required", ErrInvalidInput)
	}

	status := entity.ContentStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}
	if input.ContentType != "" && !entity.ContentType(input.ContentType).Valid() {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, input.ContentType)
	}
	if input.Platform != "" && !entity.Platform(input.Platform).Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, input.Platform)
	}

	content := &entity.SocialContent{
		PostDate:     input.PostDate,
		WeekOf:       entity.WeekOf(input.PostDate),
		ContentType:  entity.ContentType(input.ContentType),
		Platform:     entity.Platform(input.Platform),
		ContentNeeds: input.ContentNeeds,
		AssetLink:    input.AssetLink,
		Caption:      input.Caption,
		Status:       status,
		AssignedTo:   input.AssignedTo,
		CreatedBy:    actor,
	}

	if err := uc.contentRepo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return content, nil
}

func (uc *contentUseCase) GetContent(id int64) (*entity.SocialContent, error) {
	content, err := uc.contentRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return content, nil
}

func (uc *contentUseCase) ListContent(filter entity.ContentFilter) ([]*entity.SocialContent, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
	}
	if filter.Platform != "" && !filter.Platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, filter.Platform)
	}
	return uc.contentRepo.List(filter)
}

func (uc *contentUseCase) UpdateContent(id int64, input UpdateContentInput, actor string) (*entity.SocialContent, error) {
	fields := map[string]interface{}{}

	if input.PostDate != nil {
		if input.PostDate.IsZero() {
			return nil, fmt.Errorf("%w: post_date cannot be empty", ErrInvalidInput)
		}
		fields["post_date"] = *input.PostDate
		fields["week_of"] = entity.WeekOf(*input.PostDate)
	}
	if input.ContentType != nil {
		if *input.ContentType != "" && !entity.ContentType(*input.ContentType).Valid() {
			return nil, fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, *input.ContentType)
		}
		fields["content_type"] = *input.ContentType
	}
	if input.Platform != nil {
		if *input.Platform != "" && !entity.Platform(*input.Platform).Valid() {
			return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, *input.Platform)
		}
		fields["platform"] = *input.Platform
	}
	if input.ContentNeeds != nil {
		fields["content_needs"] = *input.ContentNeeds
	}
	if input.AssetLink != nil {
		fields["asset_link"] = *input.AssetLink
	}
	if input.Caption != nil {
		fields["caption"] = *input.Caption
	}
	if input.Status != nil {
		if !entity.ContentStatus(*input.Status).Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		fields["status"] = *input.Status
	}
	if input.AssignedTo != nil {
		fields["assigned_to"] = *input.AssignedTo
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	fields["updated_at"] = time.Now()

	content, err := uc.contentRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, notFound(err)
	}
	uc.logger.Info("content %d updated by %s", id, actor)
	return content, nil
}

func (uc *contentUseCase) DeleteContent(id int64) error {
	if err := uc.contentRepo.Delete(id); err != nil {
		return notFound(err)
	}
	return nil
}

// RepairWeeks recomputes week_of from post_date for every row and reports how
// many rows actually changed. Safe to run repeatedly.
func (uc *contentUseCase) RepairWeeks() (int, error) {
	rows, err := uc.contentRepo.ListAllForRepair()
	if err != nil {
		return 0, fmt.Errorf("failed to list content: %w", err)
	}

	updated := 0
	for _, row := range rows {
		correct := entity.WeekOf(row.PostDate)
		if row.WeekOf.Equal(correct) {
			continue
		}
		if err := uc.contentRepo.UpdateWeekOf(row.ID, correct); err != nil {
			return updated, fmt.Errorf("failed to fix week for content %d: %w", row.ID, err)
		}
		updated++
	}

	if updated > 0 {
		uc.logger.Info("repaired week_of on %d content rows", updated)
	}
	return updated, nil
}

func (uc *contentUseCase) UploadAsset(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.New().String() + filepath.Ext(file.Filename)
	url, err := uc.s3Client.UploadAsset(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}
	return url, nil
}

func (uc *contentUseCase) DeleteAsset(key string) error {
	if key == "" || strings.Contains(key, "/") {
		return fmt.Errorf("%w: invalid asset key", ErrInvalidInput)
	}

	if err := uc.s3Client.DeleteAsset(key); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
