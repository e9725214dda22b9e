package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FacebookProvider reads page-level metrics from the Graph API.
type FacebookProvider struct {
	client metaClient
	pageID string
	now    func() time.Time
}

func NewFacebookProvider(httpClient *http.Client, accessToken, pageID string) *FacebookProvider {
	return &FacebookProvider{
		client: metaClient{httpClient: httpClient, baseURL: metaBaseURL, accessToken: accessToken},
		pageID: pageID,
		now:    time.Now,
	}
}

// WithBaseURL points the provider at a different endpoint. Used in tests.
func (p *FacebookProvider) WithBaseURL(baseURL string) *FacebookProvider {
	p.client.baseURL = baseURL
	return p
}

type fbPageInfo struct {
	Name           string `json:"name"`
	FanCount       int    `json:"fan_count"`
	FollowersCount int    `json:"followers_count"`
}

type fbPost struct {
	CreatedTime string `json:"created_time"`
	Likes       *struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"likes"`
	Comments *struct {
		Summary struct {
			TotalCount int `json:"total_count"`
		} `json:"summary"`
	} `json:"comments"`
	Shares *struct {
		Count int `json:"count"`
	} `json:"shares"`
}

func (p fbPost) engagement() int {
	total := 0
	if p.Likes != nil {
		total += p.Likes.Summary.TotalCount
	}
	if p.Comments != nil {
		total += p.Comments.Summary.TotalCount
	}
	if p.Shares != nil {
		total += p.Shares.Count
	}
	return total
}

type fbPostsPage struct {
	Data []fbPost `json:"data"`
}

func (p *FacebookProvider) FetchSocial(ctx context.Context, rng Range) (*SocialReport, error) {
	if p.client.accessToken == "" || p.pageID == "" {
		return nil, fmt.Errorf("facebook: credentials not configured")
	}

	var info fbPageInfo
	err := p.client.get(ctx, "/"+p.pageID, url.Values{"fields": {"fan_count,name,followers_count"}}, &info)
	if err != nil {
		return nil, err
	}

	followers := info.FanCount
	if followers == 0 {
		followers = info.FollowersCount
	}

	days := rng.Days()
	now := p.now()
	windowStart := now.AddDate(0, 0, -days)
	prevStart := now.AddDate(0, 0, -days*2)

	current, err := p.fetchPosts(ctx, windowStart, time.Time{})
	if err != nil {
		return nil, err
	}
	previous, err := p.fetchPosts(ctx, prevStart, windowStart)
	if err != nil {
		return nil, err
	}

	curEngagement := 0
	daily := make(map[string]float64)
	for _, post := range current {
		e := post.engagement()
		curEngagement += e
		if ts, err := parseMetaTime(post.CreatedTime); err == nil {
			daily[ts.Format("2006-01-02")] += float64(e)
		}
	}
	prevEngagement := 0
	for _, post := range previous {
		prevEngagement += post.engagement()
	}

	curRate := perPostRate(curEngagement, len(current), followers)
	prevRate := perPostRate(prevEngagement, len(previous), followers)

	return &SocialReport{
		Followers: followers,
		// Follower history and reach need the Page Insights API.
		FollowerGrowth:       0,
		Posts:                len(current),
		PostGrowth:           Growth(float64(len(current)), float64(len(previous))),
		Reach:                0,
		ReachGrowth:          0,
		Impressions:          0,
		ImpressionGrowth:     0,
		EngagementRate:       curRate,
		EngagementRateChange: Growth(curRate, prevRate),
		Engagement:           engagementSeries(daily, days, now),
	}, nil
}

func (p *FacebookProvider) fetchPosts(ctx context.Context, since, until time.Time) ([]fbPost, error) {
	params := url.Values{
		"fields": {"message,created_time,likes.summary(true),comments.summary(true),shares"},
		"since":  {since.Format("2006-01-02")},
	}
	if !until.IsZero() {
		params.Set("until", until.Format("2006-01-02"))
	}

	var page fbPostsPage
	if err := p.client.get(ctx, "/"+p.pageID+"/posts", params, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}
