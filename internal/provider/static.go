package provider

import (
	"context"
	"time"
)

// StaticProvider serves fixed, deterministic reports. It stands in for any
// vendor whose credentials are not configured so that dashboards render with
// plausible data instead of erroring out.
type StaticProvider struct {
	now func() time.Time
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

// series produces a repeatable daily curve. The value cycles with the day of
// month so repeated calls on the same day return identical data.
func (p *StaticProvider) series(days int, base, spread float64) []TimePoint {
	now := p.now()
	points := make([]TimePoint, 0, days)
	for i := days; i >= 1; i-- {
		day := now.AddDate(0, 0, -i)
		offset := float64((day.Day()*7+day.YearDay()%11)%int(spread)) - spread/2
		points = append(points, TimePoint{
			Date:  day.Format("Jan 2"),
			Value: base + offset,
		})
	}
	return points
}

func (p *StaticProvider) FetchPages(ctx context.Context, rng Range, property string) (*PageReport, error) {
	days := rng.Days()
	return &PageReport{
		TotalUsers:       12543,
		UserGrowth:       12.5,
		PageViews:        45231,
		PageViewGrowth:   8.3,
		AvgDuration:      "3:24",
		DurationGrowth:   5.7,
		BounceRate:       42.3,
		BounceRateChange: -2.1,
		Traffic:          p.series(days, 420, 120),
		Sources: []SourceSlice{
			{Name: "Organic Search", Sessions: 5234},
			{Name: "Direct", Sessions: 3421},
			{Name: "Social", Sessions: 2876},
			{Name: "Referral", Sessions: 1234},
			{Name: "Email", Sessions: 987},
		},
	}, nil
}

func (p *StaticProvider) FetchSocial(ctx context.Context, rng Range) (*SocialReport, error) {
	return &SocialReport{
		Followers:            8432,
		FollowerGrowth:       15.2,
		Posts:                156,
		PostGrowth:           8.5,
		Reach:                45678,
		ReachGrowth:          12.3,
		Impressions:          67890,
		ImpressionGrowth:     10.1,
		EngagementRate:       4.8,
		EngagementRateChange: 1.2,
		Engagement:           p.series(rng.Days(), 350, 100),
	}, nil
}

func (p *StaticProvider) FetchCRM(ctx context.Context, rng Range) (*CRMReport, error) {
	return &CRMReport{
		Subscribers:    3456,
		NewSubscribers: rng.Days() * 3,
		Tags: []TagSegment{
			{Name: "Newsletter Subscribers", Count: 636, RecentActivity: 12},
			{Name: "Engaged", Count: 81, RecentActivity: 8},
			{Name: "ELM Interest", Count: 45, RecentActivity: 15},
			{Name: "Substack", Count: 205, RecentActivity: 5},
			{Name: "Course Purchasers", Count: 34, RecentActivity: 7},
		},
	}, nil
}

func (p *StaticProvider) FetchSearch(ctx context.Context, rng Range) (*SearchReport, error) {
	days := rng.Days()
	return &SearchReport{
		Impressions: p.series(days, 4200, 1600),
		CTR:         p.series(days, 4.2, 2),
	}, nil
}
