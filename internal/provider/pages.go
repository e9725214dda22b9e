package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"
)

const ga4BaseURL = "https://analyticsdata.googleapis.com"

// GA4Provider reads page analytics from the Google Analytics Data API.
type GA4Provider struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	properties  map[string]string // property alias -> GA4 property id
}

func NewGA4Provider(httpClient *http.Client, accessToken string, properties map[string]string) *GA4Provider {
	return &GA4Provider{
		httpClient:  httpClient,
		baseURL:     ga4BaseURL,
		accessToken: accessToken,
		properties:  properties,
	}
}

// WithBaseURL points the provider at a different endpoint. Used in tests.
func (p *GA4Provider) WithBaseURL(baseURL string) *GA4Provider {
	p.baseURL = baseURL
	return p
}

type ga4Request struct {
	DateRanges []ga4DateRange `json:"dateRanges"`
	Dimensions []ga4Name      `json:"dimensions"`
	Metrics    []ga4Name      `json:"metrics"`
}

type ga4DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ga4Name struct {
	Name string `json:"name"`
}

type ga4Value struct {
	Value string `json:"value"`
}

type ga4Row struct {
	DimensionValues []ga4Value `json:"dimensionValues"`
	MetricValues    []ga4Value `json:"metricValues"`
}

type ga4Response struct {
	Rows []ga4Row `json:"rows"`
}

func (p *GA4Provider) FetchPages(ctx context.Context, rng Range, property string) (*PageReport, error) {
	if p.accessToken == "" {
		return nil, fmt.Errorf("ga4: access token not configured")
	}
	propertyID, ok := p.properties[property]
	if !ok || propertyID == "" {
		return nil, fmt.Errorf("ga4: property %q not configured", property)
	}

	days := rng.Days()

	current, err := p.runReport(ctx, propertyID, ga4Request{
		DateRanges: []ga4DateRange{{StartDate: fmt.Sprintf("%ddaysAgo", days), EndDate: "today"}},
		Dimensions: []ga4Name{{"date"}},
		Metrics:    []ga4Name{{"activeUsers"}, {"screenPageViews"}, {"averageSessionDuration"}, {"bounceRate"}},
	})
	if err != nil {
		return nil, err
	}

	previous, err := p.runReport(ctx, propertyID, ga4Request{
		DateRanges: []ga4DateRange{{StartDate: fmt.Sprintf("%ddaysAgo", days*2), EndDate: fmt.Sprintf("%ddaysAgo", days)}},
		Dimensions: []ga4Name{{"date"}},
		Metrics:    []ga4Name{{"activeUsers"}, {"screenPageViews"}, {"averageSessionDuration"}, {"bounceRate"}},
	})
	if err != nil {
		return nil, err
	}

	sources, err := p.runReport(ctx, propertyID, ga4Request{
		DateRanges: []ga4DateRange{{StartDate: fmt.Sprintf("%ddaysAgo", days), EndDate: "today"}},
		Dimensions: []ga4Name{{"sessionDefaultChannelGroup"}},
		Metrics:    []ga4Name{{"sessions"}},
	})
	if err != nil {
		return nil, err
	}

	return normalizePageReport(current, previous, sources), nil
}

func (p *GA4Provider) runReport(ctx context.Context, propertyID string, reqBody ga4Request) (*ga4Response, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("ga4: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/properties/%s:runReport", p.baseURL, propertyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ga4: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ga4: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ga4: unexpected status %d", resp.StatusCode)
	}

	var parsed ga4Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("ga4: decode response: %w", err)
	}
	return &parsed, nil
}

func normalizePageReport(current, previous, sources *ga4Response) *PageReport {
	curUsers, curViews, curDuration, curBounce := sumPageRows(current)
	prevUsers, prevViews, prevDuration, prevBounce := sumPageRows(previous)

	curRows := float64(len(current.Rows))
	prevRows := float64(len(previous.Rows))

	avgDuration := safeDiv(curDuration, curRows)
	prevAvgDuration := safeDiv(prevDuration, prevRows)
	avgBounce := safeDiv(curBounce, curRows) * 100
	prevAvgBounce := safeDiv(prevBounce, prevRows) * 100

	report := &PageReport{
		TotalUsers:       int(curUsers),
		UserGrowth:       Growth(curUsers, prevUsers),
		PageViews:        int(curViews),
		PageViewGrowth:   Growth(curViews, prevViews),
		AvgDuration:      FormatDuration(avgDuration),
		DurationGrowth:   Growth(avgDuration, prevAvgDuration),
		BounceRate:       roundTenth(avgBounce),
		BounceRateChange: Growth(avgBounce, prevAvgBounce),
		Traffic:          make([]TimePoint, 0, len(current.Rows)),
		Sources:          make([]SourceSlice, 0, len(sources.Rows)),
	}

	for _, row := range current.Rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		report.Traffic = append(report.Traffic, TimePoint{
			Date:  formatGA4Date(row.DimensionValues[0].Value),
			Value: parseMetric(row.MetricValues[0].Value),
		})
	}

	for _, row := range sources.Rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		report.Sources = append(report.Sources, SourceSlice{
			Name:     row.DimensionValues[0].Value,
			Sessions: int(parseMetric(row.MetricValues[0].Value)),
		})
	}

	return report
}

func sumPageRows(resp *ga4Response) (users, views, duration, bounce float64) {
	for _, row := range resp.Rows {
		if len(row.MetricValues) < 4 {
			continue
		}
		users += parseMetric(row.MetricValues[0].Value)
		views += parseMetric(row.MetricValues[1].Value)
		duration += parseMetric(row.MetricValues[2].Value)
		bounce += parseMetric(row.MetricValues[3].Value)
	}
	return
}

func parseMetric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatGA4Date turns a yyyymmdd dimension value into "Jan 2".
func formatGA4Date(s string) string {
	t, err := time.Parse("20060102", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2")
}
