package provider

import "context"

type PageAnalytics interface {
	FetchPages(ctx context.Context, rng Range, property string) (*PageReport, error)
}

type SocialAnalytics interface {
	FetchSocial(ctx context.Context, rng Range) (*SocialReport, error)
}

type CRMAnalytics interface {
	FetchCRM(ctx context.Context, rng Range) (*CRMReport, error)
}

type SearchAnalytics interface {
	FetchSearch(ctx context.Context, rng Range) (*SearchReport, error)
}
