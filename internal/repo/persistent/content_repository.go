package persistent

import (
	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *entity.SocialContent) error
	GetByID(id int64) (*entity.SocialContent, error)
	List(filter entity.ContentFilter) ([]*entity.SocialContent, error)
	UpdateFields(id int64, fields map[string]interface{}) (*entity.SocialContent, error)
	Delete(id int64) error
	ListAllForRepair() ([]*entity.SocialContent, error)
	UpdateWeekOf(id int64, weekOf entity.Date) error
	LinkedInWeekStats(weekOf entity.Date, assignee string) (count, postedCount int, err error)
	SocialWeekStats(weekOf entity.Date) (*entity.SocialLane, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *entity.SocialContent) error {
	contentModel := ToContentModel(content)
	if err := r.db.Create(contentModel).Error; err != nil {
		return err
	}
	*content = *ToContentEntity(contentModel)
	return nil
}

func (r *contentRepository) GetByID(id int64) (*entity.SocialContent, error) {
	var contentModel model.SocialContentModel
	if err := r.db.First(&contentModel, id).Error; err != nil {
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) List(filter entity.ContentFilter) ([]*entity.SocialContent, error) {
	var contentModels []model.SocialContentModel
	query := r.db.Model(&model.SocialContentModel{})

	if filter.StartDate != nil {
		query = query.Where("post_date >= ?", filter.StartDate.Time)
	}
	if filter.EndDate != nil {
		query = query.Where("post_date <= ?", filter.EndDate.Time)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", string(filter.Platform))
	}

	if err := query.Order("post_date ASC, created_at DESC").Find(&contentModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.SocialContent, len(contentModels))
	for i := range contentModels {
		items[i] = ToContentEntity(&contentModels[i])
	}
	return items, nil
}

// UpdateFields applies a partial update; only the given columns change.
func (r *contentRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.SocialContent, error) {
	result := r.db.Model(&model.SocialContentModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *contentRepository) Delete(id int64) error {
	result := r.db.Delete(&model.SocialContentModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepository) ListAllForRepair() ([]*entity.SocialContent, error) {
	var contentModels []model.SocialContentModel
	if err := r.db.Select("id", "post_date", "week_of").Find(&contentModels).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.SocialContent, len(contentModels))
	for i := range contentModels {
		items[i] = ToContentEntity(&contentModels[i])
	}
	return items, nil
}

func (r *contentRepository) UpdateWeekOf(id int64, weekOf entity.Date) error {
	return r.db.Model(&model.SocialContentModel{}).Where("id = ?", id).
		UpdateColumn("week_of", weekOf.Time).Error
}

// LinkedInWeekStats counts one assignee's LinkedIn items for a week and how
// many of those are already scheduled or posted.
func (r *contentRepository) LinkedInWeekStats(weekOf entity.Date, assignee string) (int, int, error) {
	var result struct {
		Count       int
		PostedCount int
	}
	err := r.db.Model(&model.SocialContentModel{}).
		Select("COUNT(*) as count, COALESCE(SUM(CASE WHEN status IN ('scheduled', 'posted') THEN 1 ELSE 0 END), 0) as posted_count").
		Where("week_of = ? AND platform = ? AND assigned_to = ?", weekOf.Time, string(entity.PlatformLinkedIn), assignee).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Count, result.PostedCount, nil
}

// SocialWeekStats aggregates Instagram + Facebook items for a week by status.
func (r *contentRepository) SocialWeekStats(weekOf entity.Date) (*entity.SocialLane, error) {
	var result struct {
		Total     int
		Posted    int
		Scheduled int
		Approved  int
		Ready     int
		Draft     int
	}
	err := r.db.Model(&model.SocialContentModel{}).
		Select(`COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'posted' THEN 1 ELSE 0 END), 0) as posted,
			COALESCE(SUM(CASE WHEN status = 'scheduled' THEN 1 ELSE 0 END), 0) as scheduled,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) as approved,
			COALESCE(SUM(CASE WHEN status = 'ready_for_approval' THEN 1 ELSE 0 END), 0) as ready,
			COALESCE(SUM(CASE WHEN status = 'draft' THEN 1 ELSE 0 END), 0) as draft`).
		Where("week_of = ? AND platform IN ?", weekOf.Time, []string{
			string(entity.PlatformInstagram), string(entity.PlatformFacebook),
		}).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &entity.SocialLane{
		Total:     result.Total,
		Posted:    result.Posted,
		Scheduled: result.Scheduled,
		Approved:  result.Approved,
		Ready:     result.Ready,
		Draft:     result.Draft,
	}, nil
}
