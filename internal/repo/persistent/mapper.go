package persistent

import (
	"marketing-hub/internal/entity"
	"marketing-hub/internal/model"
)

func ToContentEntity(m *model.SocialContentModel) *entity.SocialContent {
	if m == nil {
		return nil
	}
	return &entity.SocialContent{
		ID:           m.ID,
		PostDate:     m.PostDate,
		WeekOf:       m.WeekOf,
		ContentType:  entity.ContentType(m.ContentType),
		Platform:     entity.Platform(m.Platform),
		ContentNeeds: m.ContentNeeds,
		AssetLink:    m.AssetLink,
		Caption:      m.Caption,
		Status:       entity.ContentStatus(m.Status),
		AssignedTo:   m.AssignedTo,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToContentModel(e *entity.SocialContent) *model.SocialContentModel {
	if e == nil {
		return nil
	}
	return &model.SocialContentModel{
		ID:           e.ID,
		PostDate:     e.PostDate,
		WeekOf:       e.WeekOf,
		ContentType:  string(e.ContentType),
		Platform:     string(e.Platform),
		ContentNeeds: e.ContentNeeds,
		AssetLink:    e.AssetLink,
		Caption:      e.Caption,
		Status:       string(e.Status),
		AssignedTo:   e.AssignedTo,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:              m.ID,
		ContentID:       m.ContentID,
		AuthorName:      m.AuthorName,
		Text:            m.CommentText,
		Resolved:        m.Resolved,
		ParentCommentID: m.ParentCommentID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}
	return &model.CommentModel{
		ID:              e.ID,
		ContentID:       e.ContentID,
		AuthorName:      e.AuthorName,
		CommentText:     e.Text,
		Resolved:        e.Resolved,
		ParentCommentID: e.ParentCommentID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToBlogPostEntity(m *model.BlogPostModel) *entity.BlogPost {
	if m == nil {
		return nil
	}
	return &entity.BlogPost{
		ID:          m.ID,
		Title:       m.Title,
		Topic:       m.Topic,
		Author:      m.Author,
		PublishDate: m.PublishDate,
		Link:        m.Link,
		Status:      entity.BlogStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToBlogPostModel(e *entity.BlogPost) *model.BlogPostModel {
	if e == nil {
		return nil
	}
	return &model.BlogPostModel{
		ID:          e.ID,
		Title:       e.Title,
		Topic:       e.Topic,
		Author:      e.Author,
		PublishDate: e.PublishDate,
		Link:        e.Link,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCampaignEntity(m *model.CampaignModel) *entity.Campaign {
	if m == nil {
		return nil
	}
	return &entity.Campaign{
		ID:           m.ID,
		Name:         m.Name,
		SendDate:     m.SendDate,
		Delivered:    m.Delivered,
		Opened:       m.Opened,
		Clicked:      m.Clicked,
		Bounce:       m.Bounce,
		Unsubscribed: m.Unsubscribed,
		Spam:         m.Spam,
		RawOpens:     m.RawOpens,
		RawClicks:    m.RawClicks,
		ABSubjectA:   m.ABSubjectA,
		ABSubjectB:   m.ABSubjectB,
		ABWinner:     m.ABWinner,
		ABOpenedA:    m.ABOpenedA,
		ABOpenedB:    m.ABOpenedB,
		ABClickedA:   m.ABClickedA,
		ABClickedB:   m.ABClickedB,
		ABOpensA:     m.ABOpensA,
		ABOpensB:     m.ABOpensB,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCampaignModel(e *entity.Campaign) *model.CampaignModel {
	if e == nil {
		return nil
	}
	return &model.CampaignModel{
		ID:           e.ID,
		Name:         e.Name,
		SendDate:     e.SendDate,
		Delivered:    e.Delivered,
		Opened:       e.Opened,
		Clicked:      e.Clicked,
		Bounce:       e.Bounce,
		Unsubscribed: e.Unsubscribed,
		Spam:         e.Spam,
		RawOpens:     e.RawOpens,
		RawClicks:    e.RawClicks,
		ABSubjectA:   e.ABSubjectA,
		ABSubjectB:   e.ABSubjectB,
		ABWinner:     e.ABWinner,
		ABOpenedA:    e.ABOpenedA,
		ABOpenedB:    e.ABOpenedB,
		ABClickedA:   e.ABClickedA,
		ABClickedB:   e.ABClickedB,
		ABOpensA:     e.ABOpensA,
		ABOpensB:     e.ABOpensB,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
