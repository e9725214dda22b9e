package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const ghlBaseURL = "https://services.leadconnectorhq.com"

// ghlAPIVersion is required on every request per the LeadConnector docs.
const ghlAPIVersion = "2021-07-28"

// GHLProvider reads contact metrics from the GoHighLevel (LeadConnector) API.
type GHLProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	locationID string
	now        func() time.Time
}

func NewGHLProvider(httpClient *http.Client, apiKey, locationID string) *GHLProvider {
	return &GHLProvider{
		httpClient: httpClient,
		baseURL:    ghlBaseURL,
		apiKey:     apiKey,
		locationID: locationID,
		now:        time.Now,
	}
}

// WithBaseURL points the provider at a different endpoint. Used in tests.
func (p *GHLProvider) WithBaseURL(baseURL string) *GHLProvider {
	p.baseURL = baseURL
	return p
}

type ghlContact struct {
	ID          string   `json:"id"`
	Tags        []string `json:"tags"`
	DateAdded   string   `json:"dateAdded"`
	DateUpdated string   `json:"dateUpdated"`
}

type ghlContactsResponse struct {
	Contacts []ghlContact `json:"contacts"`
	Meta     *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Total int `json:"total"`
}

func (p *GHLProvider) FetchCRM(ctx context.Context, rng Range) (*CRMReport, error) {
	if p.apiKey == "" || p.locationID == "" {
		return nil, fmt.Errorf("ghl: credentials not configured")
	}

	params := url.Values{"locationId": {p.locationID}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/contacts/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ghl: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Version", ghlAPIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ghl: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ghl: unexpected status %d", resp.StatusCode)
	}

	var parsed ghlContactsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("ghl: decode response: %w", err)
	}

	subscribers := 0
	switch {
	case parsed.Meta != nil && parsed.Meta.Total > 0:
		subscribers = parsed.Meta.Total
	case parsed.Total > 0:
		subscribers = parsed.Total
	default:
		subscribers = len(parsed.Contacts)
	}

	now := p.now()
	windowStart := now.AddDate(0, 0, -rng.Days())
	activityStart := now.AddDate(0, 0, -7)

	newSubscribers := 0
	counts := make(map[string]int)
	recent := make(map[string]int)
	for _, contact := range parsed.Contacts {
		if added, err := time.Parse(time.RFC3339, contact.DateAdded); err == nil && !added.Before(windowStart) {
			newSubscribers++
		}
		updatedRecently := false
		if updated, err := time.Parse(time.RFC3339, contact.DateUpdated); err == nil && !updated.Before(activityStart) {
			updatedRecently = true
		}
		for _, tag := range contact.Tags {
			counts[tag]++
			if updatedRecently {
				recent[tag]++
			}
		}
	}

	tags := make([]TagSegment, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, TagSegment{Name: name, Count: count, RecentActivity: recent[name]})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Name < tags[j].Name
	})

	return &CRMReport{
		Subscribers:    subscribers,
		NewSubscribers: newSubscribers,
		Tags:           tags,
	}, nil
}
