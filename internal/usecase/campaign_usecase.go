package usecase

import (
	"fmt"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"
)

type CreateCampaignInput struct {
	Name         string
	SendDate     entity.Date
	Delivered    int
	Opened       float64
	Clicked      float64
	Bounce       int
	Unsubscribed int
	Spam         int
	RawOpens     *int
	RawClicks    *int
	ABSubjectA   string
	ABSubjectB   string
	ABWinner     string
	ABOpenedA    *float64
	ABOpenedB    *float64
	ABClickedA   *float64
	ABClickedB   *float64
	ABOpensA     *int
	ABOpensB     *int
	Notes        string
}

type UpdateCampaignInput struct {
	Name         *string
	SendDate     *entity.Date
	Delivered    *int
	Opened       *float64
	Clicked      *float64
	Bounce       *int
	Unsubscribed *int
	Spam         *int
	RawOpens     *int
	RawClicks    *int
	ABSubjectA   *string
	ABSubjectB   *string
	ABWinner     *string
	ABOpenedA    *float64
	ABOpenedB    *float64
	ABClickedA   *float64
	ABClickedB   *float64
	ABOpensA     *int
	ABOpensB     *int
	Notes        *string
}

type CampaignUseCase interface {
	CreateCampaign(input CreateCampaignInput) (*entity.Campaign, error)
	GetCampaign(id int64) (*entity.Campaign, error)
	ListCampaigns() ([]entity.Campaign, error)
	UpdateCampaign(id int64, input UpdateCampaignInput) (*entity.Campaign, error)
	DeleteCampaign(id int64) error
	FindDuplicateGroups() ([]entity.DuplicateGroup, error)
	CleanupDuplicates(name string, sendDate entity.Date) (int64, error)
}

type campaignUseCase struct {
	campaignRepo persistent.CampaignRepository
	logger       *logger.Logger
}

func NewCampaignUseCase(campaignRepo persistent.CampaignRepository, logger *logger.Logger) CampaignUseCase {
	return &campaignUseCase{campaignRepo: campaignRepo, logger: logger}
}

func (uc *campaignUseCase) CreateCampaign(input CreateCampaignInput) (*entity.Campaign, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.SendDate.IsZero() {
		return nil, fmt.Errorf("%w: send_date is required", ErrInvalidInput)
	}

	campaign := &entity.Campaign{
		Name:         input.Name,
		SendDate:     input.SendDate,
		Delivered:    input.Delivered,
		Opened:       input.Opened,
		Clicked:      input.Clicked,
		Bounce:       input.Bounce,
		Unsubscribed: input.Unsubscribed,
		Spam:         input.Spam,
		RawOpens:     input.RawOpens,
		RawClicks:    input.RawClicks,
		ABSubjectA:   input.ABSubjectA,
		ABSubjectB:   input.ABSubjectB,
		ABWinner:     input.ABWinner,
		ABOpenedA:    input.ABOpenedA,
		ABOpenedB:    input.ABOpenedB,
		ABClickedA:   input.ABClickedA,
		ABClickedB:   input.ABClickedB,
		ABOpensA:     input.ABOpensA,
		ABOpensB:     input.ABOpensB,
		Notes:        input.Notes,
	}
	campaign.RecomputeRates()

	if err := uc.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

func (uc *campaignUseCase) GetCampaign(id int64) (*entity.Campaign, error) {
	campaign, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return campaign, nil
}

func (uc *campaignUseCase) ListCampaigns() ([]entity.Campaign, error) {
	return uc.campaignRepo.List()
}

func (uc *campaignUseCase) UpdateCampaign(id int64, input UpdateCampaignInput) (*entity.Campaign, error) {
	fields := map[string]interface{}{}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		fields["name"] = *input.Name
	}
	if input.SendDate != nil {
		if input.SendDate.IsZero() {
			return nil, fmt.Errorf("%w: send_date cannot be empty", ErrInvalidInput)
		}
		fields["send_date"] = *input.SendDate
	}
	if input.Delivered != nil {
		fields["delivered"] = *input.Delivered
	}
	if input.Opened != nil {
		fields["opened"] = *input.Opened
	}
	if input.Clicked != nil {
		fields["clicked"] = *input.Clicked
	}
	if input.Bounce != nil {
		fields["bounce"] = *input.Bounce
	}
	if input.Unsubscribed != nil {
		fields["unsubscribed"] = *input.Unsubscribed
	}
	if input.Spam != nil {
		fields["spam"] = *input.Spam
	}
	if input.RawOpens != nil {
		fields["raw_opens"] = *input.RawOpens
	}
	if input.RawClicks != nil {
		fields["raw_clicks"] = *input.RawClicks
	}
	if input.ABSubjectA != nil {
		fields["ab_subject_a"] = *input.ABSubjectA
	}
	if input.ABSubjectB != nil {
		fields["ab_subject_b"] = *input.ABSubjectB
	}
	if input.ABWinner != nil {
		fields["ab_winner"] = *input.ABWinner
	}
	if input.ABOpenedA != nil {
		fields["ab_opened_a"] = *input.ABOpenedA
	}
	if input.ABOpenedB != nil {
		fields["ab_opened_b"] = *input.ABOpenedB
	}
	if input.ABClickedA != nil {
		fields["ab_clicked_a"] = *input.ABClickedA
	}
	if input.ABClickedB != nil {
		fields["ab_clicked_b"] = *input.ABClickedB
	}
	if input.ABOpensA != nil {
		fields["ab_opens_a"] = *input.ABOpensA
	}
	if input.ABOpensB != nil {
		fields["ab_opens_b"] = *input.ABOpensB
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	fields["updated_at"] = time.Now()

	campaign, err := uc.campaignRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, notFound(err)
	}

	// Raw counts win over submitted percentages. If the update touched the
	// inputs of the rate math, persist the recomputed values.
	recomputed := *campaign
	recomputed.RecomputeRates()
	if recomputed.Opened != campaign.Opened || recomputed.Clicked != campaign.Clicked {
		campaign, err = uc.campaignRepo.UpdateFields(id, map[string]interface{}{
			"opened":  recomputed.Opened,
			"clicked": recomputed.Clicked,
		})
		if err != nil {
			return nil, notFound(err)
		}
	}
	return campaign, nil
}

func (uc *campaignUseCase) DeleteCampaign(id int64) error {
	if err := uc.campaignRepo.Delete(id); err != nil {
		return notFound(err)
	}
	return nil
}

func (uc *campaignUseCase) FindDuplicateGroups() ([]entity.DuplicateGroup, error) {
	campaigns, err := uc.campaignRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return entity.FindDuplicates(campaigns), nil
}

// CleanupDuplicates removes every campaign sharing (name, send_date) except
// the newest one, atomically. Returns the number of rows removed.
func (uc *campaignUseCase) CleanupDuplicates(name string, sendDate entity.Date) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if sendDate.IsZero() {
		return 0, fmt.Errorf("%w: send_date is required", ErrInvalidInput)
	}

	removed, err := uc.campaignRepo.DeleteAllButNewest(name, sendDate)
	if err != nil {
		return 0, notFound(err)
	}
	uc.logger.Info("removed %d duplicate campaigns for %q on %s", removed, name, sendDate)
	return removed, nil
}
