package persistent

import (
	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	ListByContentID(contentID int64) ([]entity.Comment, error)
	GetByID(id int64) (*entity.Comment, error)
	UpdateFields(id int64, fields map[string]interface{}) (*entity.Comment, error)
	Delete(id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) ListByContentID(contentID int64) ([]entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Where("content_id = ?", contentID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = *ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) GetByID(id int64) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.First(&commentModel, id).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.Comment, error) {
	result := r.db.Model(&model.CommentModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *commentRepository) Delete(id int64) error {
	result := r.db.Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
