package persistent

import (
	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"

	"gorm.io/gorm"
)

type CampaignRepository interface {
	Create(campaign *entity.Campaign) error
	GetByID(id int64) (*entity.Campaign, error)
	List() ([]entity.Campaign, error)
	ListRecent(limit int) ([]entity.Campaign, error)
	UpdateFields(id int64, fields map[string]interface{}) (*entity.Campaign, error)
	Delete(id int64) error
	DeleteAllButNewest(name string, sendDate entity.Date) (int64, error)
}

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(campaign *entity.Campaign) error {
	campaignModel := ToCampaignModel(campaign)
	if err := r.db.Create(campaignModel).Error; err != nil {
		return err
	}
	*campaign = *ToCampaignEntity(campaignModel)
	return nil
}

func (r *campaignRepository) GetByID(id int64) (*entity.Campaign, error) {
	var campaignModel model.CampaignModel
	if err := r.db.First(&campaignModel, id).Error; err != nil {
		return nil, err
	}
	return ToCampaignEntity(&campaignModel), nil
}

func (r *campaignRepository) List() ([]entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	if err := r.db.Order("send_date DESC").Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]entity.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = *ToCampaignEntity(&campaignModels[i])
	}
	return campaigns, nil
}

func (r *campaignRepository) ListRecent(limit int) ([]entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	if err := r.db.Order("send_date DESC").Limit(limit).Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]entity.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = *ToCampaignEntity(&campaignModels[i])
	}
	return campaigns, nil
}

func (r *campaignRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.Campaign, error) {
	result := r.db.Model(&model.CampaignModel{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *campaignRepository) Delete(id int64) error {
	result := r.db.Delete(&model.CampaignModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAllButNewest removes every campaign sharing (name, send date) except
// the one with the highest id, in a single transaction. Returns the number of
// rows removed.
func (r *campaignRepository) DeleteAllButNewest(name string, sendDate entity.Date) (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var keepID int64
		err := tx.Model(&model.CampaignModel{}).
			Select("COALESCE(MAX(id), 0)").
			Where("name = ? AND send_date = ?", name, sendDate.Time).
			Scan(&keepID).Error
		if err != nil {
			return err
		}
		if keepID == 0 {
			return gorm.ErrRecordNotFound
		}

		result := tx.Where("name = ? AND send_date = ? AND id <> ?", name, sendDate.Time, keepID).
			Delete(&model.CampaignModel{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	})
	return removed, err
}
