package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const metaBaseURL = "https://graph.facebook.com/v19.0"

// metaClient wraps the Graph API plumbing shared by the Instagram and
// Facebook providers.
type metaClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

type metaError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *metaClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("meta: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("meta: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("meta: unexpected status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return fmt.Errorf("meta: decode response: %w", err)
	}

	// Graph API reports token and permission problems inside a 200 body.
	var apiErr metaError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != nil {
		return fmt.Errorf("meta: api error: %s", apiErr.Error.Message)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("meta: decode response: %w", err)
	}
	return nil
}

// parseMetaTime handles Graph API timestamps, which use a colonless zone
// offset ("+0000") that RFC 3339 parsing rejects.
func parseMetaTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05-0700", s)
}

// engagementSeries builds a per-day engagement series over the trailing
// window, oldest day first. Days with no activity stay at zero.
func engagementSeries(daily map[string]float64, days int, now time.Time) []TimePoint {
	points := make([]TimePoint, 0, days)
	for i := days; i >= 1; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, TimePoint{
			Date:  day.Format("Jan 2"),
			Value: daily[day.Format("2006-01-02")],
		})
	}
	return points
}

func roundHundredth(v float64) float64 {
	return math.Round(v*100) / 100
}

// perPostRate is average engagement per post as a share of followers.
func perPostRate(engagement, posts, followers int) float64 {
	if followers == 0 || posts == 0 {
		return 0
	}
	return roundHundredth(float64(engagement) / float64(posts) / float64(followers) * 100)
}
