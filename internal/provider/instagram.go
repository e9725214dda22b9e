package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// InstagramProvider reads metrics for the Instagram Business account linked
// to a Facebook Page.
type InstagramProvider struct {
	client metaClient
	pageID string
	now    func() time.Time
}

func NewInstagramProvider(httpClient *http.Client, accessToken, pageID string) *InstagramProvider {
	return &InstagramProvider{
		client: metaClient{httpClient: httpClient, baseURL: metaBaseURL, accessToken: accessToken},
		pageID: pageID,
		now:    time.Now,
	}
}

// WithBaseURL points the provider at a different endpoint. Used in tests.
func (p *InstagramProvider) WithBaseURL(baseURL string) *InstagramProvider {
	p.client.baseURL = baseURL
	return p
}

type igAccountLink struct {
	InstagramBusinessAccount *struct {
		ID string `json:"id"`
	} `json:"instagram_business_account"`
}

type igAccountInfo struct {
	FollowersCount int    `json:"followers_count"`
	MediaCount     int    `json:"media_count"`
	Username       string `json:"username"`
}

type igMediaItem struct {
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
	Timestamp     string `json:"timestamp"`
	Impressions   int    `json:"impressions"`
	Reach         int    `json:"reach"`
}

type igMediaPage struct {
	Data []igMediaItem `json:"data"`
}

func (p *InstagramProvider) FetchSocial(ctx context.Context, rng Range) (*SocialReport, error) {
	if p.client.accessToken == "" || p.pageID == "" {
		return nil, fmt.Errorf("instagram: credentials not configured")
	}

	var link igAccountLink
	err := p.client.get(ctx, "/"+p.pageID, url.Values{"fields": {"instagram_business_account"}}, &link)
	if err != nil {
		return nil, err
	}
	if link.InstagramBusinessAccount == nil || link.InstagramBusinessAccount.ID == "" {
		return nil, fmt.Errorf("instagram: no business account linked to page %s", p.pageID)
	}
	accountID := link.InstagramBusinessAccount.ID

	var info igAccountInfo
	err = p.client.get(ctx, "/"+accountID, url.Values{"fields": {"followers_count,media_count,username"}}, &info)
	if err != nil {
		return nil, err
	}

	days := rng.Days()
	now := p.now()
	windowStart := now.AddDate(0, 0, -days)
	prevStart := now.AddDate(0, 0, -days*2)

	current, err := p.fetchMedia(ctx, accountID, windowStart, time.Time{})
	if err != nil {
		return nil, err
	}
	previous, err := p.fetchMedia(ctx, accountID, prevStart, windowStart)
	if err != nil {
		return nil, err
	}

	curEngagement, curReach, curImpressions := sumMedia(current)
	prevEngagement, prevReach, prevImpressions := sumMedia(previous)

	curRate := perPostRate(curEngagement, len(current), info.FollowersCount)
	prevRate := perPostRate(prevEngagement, len(previous), info.FollowersCount)

	daily := make(map[string]float64)
	for _, item := range current {
		ts, err := parseMetaTime(item.Timestamp)
		if err != nil {
			continue
		}
		daily[ts.Format("2006-01-02")] += float64(item.LikeCount + item.CommentsCount)
	}

	return &SocialReport{
		Followers: info.FollowersCount,
		// Follower history needs the Insights API and extra permissions.
		FollowerGrowth:       0,
		Posts:                len(current),
		PostGrowth:           Growth(float64(len(current)), float64(len(previous))),
		Reach:                curReach,
		ReachGrowth:          Growth(float64(curReach), float64(prevReach)),
		Impressions:          curImpressions,
		ImpressionGrowth:     Growth(float64(curImpressions), float64(prevImpressions)),
		EngagementRate:       curRate,
		EngagementRateChange: Growth(curRate, prevRate),
		Engagement:           engagementSeries(daily, days, now),
	}, nil
}

func (p *InstagramProvider) fetchMedia(ctx context.Context, accountID string, since, until time.Time) ([]igMediaItem, error) {
	params := url.Values{
		"fields": {"like_count,comments_count,timestamp,impressions,reach"},
		"limit":  {"100"},
		"since":  {strconv.FormatInt(since.Unix(), 10)},
	}
	if !until.IsZero() {
		params.Set("until", strconv.FormatInt(until.Unix(), 10))
	}

	var page igMediaPage
	if err := p.client.get(ctx, "/"+accountID+"/media", params, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func sumMedia(items []igMediaItem) (engagement, reach, impressions int) {
	for _, item := range items {
		engagement += item.LikeCount + item.CommentsCount
		reach += item.Reach
		impressions += item.Impressions
	}
	return
}
