package persistent

import (
	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"

	"gorm.io/gorm"
)

type BlogPostRepository interface {
	Create(post *entity.BlogPost) error
	GetByID(id int64) (*entity.BlogPost, error)
	List(startDate, endDate *entity.Date) ([]*entity.BlogPost, error)
	UpdateFields(id int64, fields map[string]interface{}) (*entity.BlogPost, error)
	Delete(id int64) error
	LatestInRange(from, until entity.Date) (*entity.BlogPost, error)
}

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Create(post *entity.BlogPost) error {
	postModel := ToBlogPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToBlogPostEntity(postModel)
	return nil
}

func (r *blogPostRepository) GetByID(id int64) (*entity.BlogPost, error) {
	var postModel model.BlogPostModel
	if err := r.db.First(&postModel, id).Error; err != nil {
		return nil, err
	}
	return ToBlogPostEntity(&postModel), nil
}

func (r *blogPostRepository) List(startDate, endDate *entity.Date) ([]*entity.BlogPost, error) {
	var postModels []model.BlogPostModel
	query := r.db.Model(&model.BlogPostModel{})

	if startDate != nil && endDate != nil {
		query = query.Where("publish_date BETWEEN ? AND ?", startDate.Time, endDate.Time).
			Order("publish_date ASC")
	} else {
		query = query.Order("publish_date DESC")
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.BlogPost, len(postModels))
	for i := range postModels {
		posts[i] = ToBlogPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *blogPostRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.BlogPost, error) {
	result := r.db.Model(&model.BlogPostModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *blogPostRepository) Delete(id int64) error {
	result := r.db.Delete(&model.BlogPostModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LatestInRange returns the most recently published post with publish_date in
// [from, until), or nil when the range is empty.
func (r *blogPostRepository) LatestInRange(from, until entity.Date) (*entity.BlogPost, error) {
	var postModel model.BlogPostModel
	err := r.db.Where("publish_date >= ? AND publish_date < ?", from.Time, until.Time).
		Order("publish_date DESC").
		First(&postModel).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return ToBlogPostEntity(&postModel), nil
}
