package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"marketing-hub/internal/entity"
	"marketing-hub/internal/provider"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const recentCampaignCount = 3

// RecentCampaign is the condensed campaign view attached to the CRM section.
// Opens and clicks fall back to values derived from the stored percentages
// when raw counts were never recorded.
type RecentCampaign struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	SentDate   entity.Date `json:"sent_date"`
	Recipients int         `json:"recipients"`
	Opens      int         `json:"opens"`
	Clicks     int         `json:"clicks"`
	OpenRate   float64     `json:"open_rate"`
	ClickRate  float64     `json:"click_rate"`
}

// CRMView is the CRM provider report plus the most recent local campaigns.
type CRMView struct {
	provider.CRMReport
	RecentCampaigns []RecentCampaign `json:"recent_campaigns"`
}

// AnalyticsOverview aggregates every provider. Each section degrades
// independently: a failed fetch leaves its report nil and fills the matching
// error string, never failing the whole response.
type AnalyticsOverview struct {
	Range          string                  `json:"range"`
	Property       string                  `json:"property"`
	Pages          *provider.PageReport    `json:"pages,omitempty"`
	PagesError     string                  `json:"pages_error,omitempty"`
	Instagram      *provider.SocialReport  `json:"instagram,omitempty"`
	InstagramError string                  `json:"instagram_error,omitempty"`
	Facebook       *provider.SocialReport  `json:"facebook,omitempty"`
	FacebookError  string                  `json:"facebook_error,omitempty"`
	CRM            *CRMView                `json:"crm,omitempty"`
	CRMError       string                  `json:"crm_error,omitempty"`
	Search         *provider.SearchReport  `json:"search,omitempty"`
	SearchError    string                  `json:"search_error,omitempty"`
}

type AnalyticsUseCase interface {
	Overview(ctx context.Context, rng provider.Range, property string) (*AnalyticsOverview, error)
	Pages(ctx context.Context, rng provider.Range, property string) (*provider.PageReport, error)
	Instagram(ctx context.Context, rng provider.Range) (*provider.SocialReport, error)
	Facebook(ctx context.Context, rng provider.Range) (*provider.SocialReport, error)
	CRM(ctx context.Context, rng provider.Range) (*CRMView, error)
	Search(ctx context.Context, rng provider.Range) (*provider.SearchReport, error)
}

type analyticsUseCase struct {
	pages        provider.PageAnalytics
	instagram    provider.SocialAnalytics
	facebook     provider.SocialAnalytics
	crm          provider.CRMAnalytics
	search       provider.SearchAnalytics
	campaignRepo persistent.CampaignRepository
	redisClient  *redis.Client
	cacheTTL     time.Duration
	callTimeout  time.Duration
	logger       *logger.Logger
}

func NewAnalyticsUseCase(
	pages provider.PageAnalytics,
	instagram provider.SocialAnalytics,
	facebook provider.SocialAnalytics,
	crm provider.CRMAnalytics,
	search provider.SearchAnalytics,
	campaignRepo persistent.CampaignRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	callTimeout time.Duration,
	logger *logger.Logger,
) AnalyticsUseCase {
	return &analyticsUseCase{
		pages:        pages,
		instagram:    instagram,
		facebook:     facebook,
		crm:          crm,
		search:       search,
		campaignRepo: campaignRepo,
		redisClient:  redisClient,
		cacheTTL:     cacheTTL,
		callTimeout:  callTimeout,
		logger:       logger,
	}
}

func (uc *analyticsUseCase) Overview(ctx context.Context, rng provider.Range, property string) (*AnalyticsOverview, error) {
	cacheKey := fmt.Sprintf("analytics:overview:%s:%s", rng, property)
	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		var overview AnalyticsOverview
		if err := json.Unmarshal(cached, &overview); err == nil {
			return &overview, nil
		}
	}

	overview := &AnalyticsOverview{Range: string(rng), Property: property}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		report, err := uc.Pages(ctx, rng, property)
		if err != nil {
			overview.PagesError = err.Error()
			return
		}
		overview.Pages = report
	}()
	go func() {
		defer wg.Done()
		report, err := uc.Instagram(ctx, rng)
		if err != nil {
			overview.InstagramError = err.Error()
			return
		}
		overview.Instagram = report
	}()
	go func() {
		defer wg.Done()
		report, err := uc.Facebook(ctx, rng)
		if err != nil {
			overview.FacebookError = err.Error()
			return
		}
		overview.Facebook = report
	}()
	go func() {
		defer wg.Done()
		view, err := uc.CRM(ctx, rng)
		if err != nil {
			overview.CRMError = err.Error()
			return
		}
		overview.CRM = view
	}()
	go func() {
		defer wg.Done()
		report, err := uc.Search(ctx, rng)
		if err != nil {
			overview.SearchError = err.Error()
			return
		}
		overview.Search = report
	}()

	wg.Wait()

	uc.writeCache(ctx, cacheKey, overview)
	return overview, nil
}

func (uc *analyticsUseCase) Pages(ctx context.Context, rng provider.Range, property string) (*provider.PageReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	report, err := uc.pages.FetchPages(ctx, rng, property)
	if err != nil {
		uc.logger.Warn("analytics: pages fetch failed: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *analyticsUseCase) Instagram(ctx context.Context, rng provider.Range) (*provider.SocialReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	report, err := uc.instagram.FetchSocial(ctx, rng)
	if err != nil {
		uc.logger.Warn("analytics: instagram fetch failed: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *analyticsUseCase) Facebook(ctx context.Context, rng provider.Range) (*provider.SocialReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	report, err := uc.facebook.FetchSocial(ctx, rng)
	if err != nil {
		uc.logger.Warn("analytics: facebook fetch failed: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *analyticsUseCase) CRM(ctx context.Context, rng provider.Range) (*CRMView, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	report, err := uc.crm.FetchCRM(fetchCtx, rng)
	if err != nil {
		uc.logger.Warn("analytics: crm fetch failed: %v", err)
		return nil, err
	}

	view := &CRMView{CRMReport: *report}

	// Recent sends come from our own records, not the vendor.
	campaigns, err := uc.campaignRepo.ListRecent(recentCampaignCount)
	if err != nil {
		uc.logger.Warn("analytics: recent campaigns lookup failed: %v", err)
		campaigns = nil
	}
	for _, c := range campaigns {
		view.RecentCampaigns = append(view.RecentCampaigns, condenseCampaign(c))
	}
	return view, nil
}

func (uc *analyticsUseCase) Search(ctx context.Context, rng provider.Range) (*provider.SearchReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()
	report, err := uc.search.FetchSearch(ctx, rng)
	if err != nil {
		uc.logger.Warn("analytics: search fetch failed: %v", err)
		return nil, err
	}
	return report, nil
}

func (uc *analyticsUseCase) readCache(ctx context.Context, key string) []byte {
	if uc.redisClient == nil {
		return nil
	}
	data, err := uc.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (uc *analyticsUseCase) writeCache(ctx context.Context, key string, value interface{}) {
	if uc.redisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(ctx, key, data, uc.cacheTTL).Err(); err != nil {
		uc.logger.Warn("analytics: cache write failed for %s: %v", key, err)
	}
}

func condenseCampaign(c entity.Campaign) RecentCampaign {
	opens := 0
	if c.RawOpens != nil {
		opens = *c.RawOpens
	} else {
		opens = int(float64(c.Delivered) * c.Opened / 100)
	}
	clicks := 0
	if c.RawClicks != nil {
		clicks = *c.RawClicks
	} else {
		clicks = int(float64(c.Delivered) * c.Clicked / 100)
	}

	return RecentCampaign{
		ID:         c.ID,
		Name:       c.Name,
		SentDate:   c.SendDate,
		Recipients: c.Delivered,
		Opens:      opens,
		Clicks:     clicks,
		OpenRate:   c.Opened,
		ClickRate:  c.Clicked,
	}
}
