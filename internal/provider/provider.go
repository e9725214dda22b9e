// Package provider holds the external metrics integrations behind small
// capability interfaces: one HTTP implementation per vendor plus a
// deterministic static implementation used when credentials are absent.
// Degradation is the caller's job: a provider returns an error, the
// aggregator turns it into a zeroed report with an error note.
package provider

import (
	"fmt"
	"math"
)

// Range is a dashboard time window.
type Range string

const (
	Range7d   Range = "7d"
	Range30d  Range = "30d"
	Range90d  Range = "90d"
	Range365d Range = "365d"
)

func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case Range7d, Range30d, Range90d, Range365d:
		return Range(s), nil
	case "":
		return Range30d, nil
	}
	return "", fmt.Errorf("invalid range %q", s)
}

func (r Range) Days() int {
	switch r {
	case Range7d:
		return 7
	case Range90d:
		return 90
	case Range365d:
		return 365
	default:
		return 30
	}
}

// Growth returns the period-over-period change in percent, rounded to one
// decimal. Zero when the previous period is zero.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}

// FormatDuration renders seconds as MM:SS.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// TimePoint is one sample of a chart series.
type TimePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SourceSlice is one channel in the traffic-source breakdown.
type SourceSlice struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
}

// PageReport is the normalized page-analytics view (users, views, duration,
// bounce rate, channel breakdown).
type PageReport struct {
	TotalUsers       int           `json:"total_users"`
	UserGrowth       float64       `json:"user_growth"`
	PageViews        int           `json:"page_views"`
	PageViewGrowth   float64       `json:"page_view_growth"`
	AvgDuration      string        `json:"avg_duration"`
	DurationGrowth   float64       `json:"duration_growth"`
	BounceRate       float64       `json:"bounce_rate"`
	BounceRateChange float64       `json:"bounce_rate_change"`
	Traffic          []TimePoint   `json:"traffic_data"`
	Sources          []SourceSlice `json:"source_data"`
}

// SocialReport is the normalized social-platform view shared by the
// Instagram and Facebook providers.
type SocialReport struct {
	Followers            int         `json:"followers"`
	FollowerGrowth       float64     `json:"follower_growth"`
	Posts                int         `json:"posts"`
	PostGrowth           float64     `json:"post_growth"`
	Reach                int         `json:"reach"`
	ReachGrowth          float64     `json:"reach_growth"`
	Impressions          int         `json:"impressions"`
	ImpressionGrowth     float64     `json:"impression_growth"`
	EngagementRate       float64     `json:"engagement_rate"`
	EngagementRateChange float64     `json:"engagement_rate_change"`
	Engagement           []TimePoint `json:"engagement_data"`
}

// TagSegment is one CRM tag with its contact count.
type TagSegment struct {
	Name           string `json:"name"`
	Count          int    `json:"count"`
	RecentActivity int    `json:"recent_activity"`
}

// CRMReport is the normalized contacts view.
type CRMReport struct {
	Subscribers    int          `json:"subscribers"`
	NewSubscribers int          `json:"new_subscribers"`
	Tags           []TagSegment `json:"active_tags"`
}

// SearchReport is the normalized search-performance view.
type SearchReport struct {
	Impressions []TimePoint `json:"impressions_data"`
	CTR         []TimePoint `json:"ctr_data"`
}
