package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const searchConsoleBaseURL = "https://www.googleapis.com/webmasters/v3"

// SearchConsoleProvider reads search performance from the Google Search
// Console API.
type SearchConsoleProvider struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	siteURL     string
	now         func() time.Time
}

func NewSearchConsoleProvider(httpClient *http.Client, accessToken, siteURL string) *SearchConsoleProvider {
	return &SearchConsoleProvider{
		httpClient:  httpClient,
		baseURL:     searchConsoleBaseURL,
		accessToken: accessToken,
		siteURL:     siteURL,
		now:         time.Now,
	}
}

// WithBaseURL points the provider at a different endpoint. Used in tests.
func (p *SearchConsoleProvider) WithBaseURL(baseURL string) *SearchConsoleProvider {
	p.baseURL = baseURL
	return p
}

type searchQueryRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit"`
}

type searchQueryResponse struct {
	Rows []struct {
		Keys        []string `json:"keys"`
		Clicks      float64  `json:"clicks"`
		Impressions float64  `json:"impressions"`
		CTR         float64  `json:"ctr"`
	} `json:"rows"`
}

func (p *SearchConsoleProvider) FetchSearch(ctx context.Context, rng Range) (*SearchReport, error) {
	if p.accessToken == "" || p.siteURL == "" {
		return nil, fmt.Errorf("search console: credentials not configured")
	}

	now := p.now()
	reqBody := searchQueryRequest{
		StartDate:  now.AddDate(0, 0, -rng.Days()).Format("2006-01-02"),
		EndDate:    now.Format("2006-01-02"),
		Dimensions: []string{"date"},
		RowLimit:   400,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("search console: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/sites/%s/searchAnalytics/query", p.baseURL, url.PathEscape(p.siteURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("search console: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search console: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search console: unexpected status %d", resp.StatusCode)
	}

	var parsed searchQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("search console: decode response: %w", err)
	}

	report := &SearchReport{
		Impressions: make([]TimePoint, 0, len(parsed.Rows)),
		CTR:         make([]TimePoint, 0, len(parsed.Rows)),
	}
	for _, row := range parsed.Rows {
		if len(row.Keys) == 0 {
			continue
		}
		label := formatSearchDate(row.Keys[0])
		report.Impressions = append(report.Impressions, TimePoint{Date: label, Value: row.Impressions})
		// CTR arrives as a fraction; report it as a percentage.
		report.CTR = append(report.CTR, TimePoint{Date: label, Value: roundHundredth(row.CTR * 100)})
	}
	return report, nil
}

func formatSearchDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2")
}
