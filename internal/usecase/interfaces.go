package usecase

import (
	"context"

	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
	"github.com/prospectfinder/backend/internal/infra/queue"
)

// VendorGateway is the slice of the Lusha client the use cases depend on.
// Filter-metadata passthroughs are proxied by the HTTP layer directly and do
// not appear here.
type VendorGateway interface {
	SearchContacts(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error)
	SearchCompanies(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error)
	EnrichContacts(ctx context.Context, requestID string, contactIDs []string, revealEmail, revealPhone bool) (*lusha.EnrichResult, error)
}

// SearchCachePort stores the last search result per user and kind.
type SearchCachePort interface {
	Put(ctx context.Context, userID int64, kind string, value any) error
	Get(ctx context.Context, userID int64, kind string, out any) (bool, error)
}

type QueueProducerInterface interface {
	PublishAnalysis(ctx context.Context, payload queue.AnalysisPayload) error
}

type EmailService interface {
	SendWelcome(to, username string) error
}
