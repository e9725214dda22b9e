package usecase

import (
	"marketing-hub/internal/entity"

	"github.com/stretchr/testify/mock"
)

// MockContentRepository is a mock implementation of persistent.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(content *entity.SocialContent) error {
	args := m.Called(content)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(id int64) (*entity.SocialContent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialContent), args.Error(1)
}

func (m *MockContentRepository) List(filter entity.ContentFilter) ([]*entity.SocialContent, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SocialContent), args.Error(1)
}

func (m *MockContentRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.SocialContent, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialContent), args.Error(1)
}

func (m *MockContentRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentRepository) ListAllForRepair() ([]*entity.SocialContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SocialContent), args.Error(1)
}

func (m *MockContentRepository) UpdateWeekOf(id int64, weekOf entity.Date) error {
	args := m.Called(id, weekOf)
	return args.Error(0)
}

func (m *MockContentRepository) LinkedInWeekStats(weekOf entity.Date, assignee string) (int, int, error) {
	args := m.Called(weekOf, assignee)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockContentRepository) SocialWeekStats(weekOf entity.Date) (*entity.SocialLane, error) {
	args := m.Called(weekOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SocialLane), args.Error(1)
}

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByContentID(contentID int64) ([]entity.Comment, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(id int64) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.Comment, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBlogPostRepository is a mock implementation of persistent.BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) Create(post *entity.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogPostRepository) GetByID(id int64) (*entity.BlogPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) List(startDate, endDate *entity.Date) ([]*entity.BlogPost, error) {
	args := m.Called(startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.BlogPost, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBlogPostRepository) LatestInRange(from, until entity.Date) (*entity.BlogPost, error) {
	args := m.Called(from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPost), args.Error(1)
}

// MockCampaignRepository is a mock implementation of persistent.CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(campaign *entity.Campaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) GetByID(id int64) (*entity.Campaign, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) List() ([]entity.Campaign, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListRecent(limit int) ([]entity.Campaign, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) UpdateFields(id int64, fields map[string]interface{}) (*entity.Campaign, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCampaignRepository) DeleteAllButNewest(name string, sendDate entity.Date) (int64, error) {
	args := m.Called(name, sendDate)
	return args.Get(0).(int64), args.Error(1)
}
