package usecase

import (
	"context"
	"log"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
)

const defaultPageSize = 25

// SearchUseCase routes a search to the vendor or the local store, normalizes
// what comes back, and remembers the last vendor result per user so its
// requestId can be replayed into an enrichment call.
type SearchUseCase struct {
	Gateway      VendorGateway
	ProspectRepo entity.ProspectRepositoryInterface
	Cache        SearchCachePort
}

func NewSearchUseCase(gateway VendorGateway, repo entity.ProspectRepositoryInterface, cache SearchCachePort) *SearchUseCase {
	return &SearchUseCase{Gateway: gateway, ProspectRepo: repo, Cache: cache}
}

func (uc *SearchUseCase) Execute(ctx context.Context, userID int64, input SearchInput) (*SearchOutput, error) {
	if errs := ValidateSearchInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	if input.Size == 0 {
		input.Size = defaultPageSize
	}

	if input.Target == TargetLocal {
		return uc.searchLocal(ctx, userID, input)
	}
	return uc.searchVendor(ctx, userID, input)
}

// LastSearch replays the most recent vendor result for user+kind, if one
// is cached and still inside its lifetime.
func (uc *SearchUseCase) LastSearch(ctx context.Context, userID int64, kind string) (*SearchOutput, error) {
	if kind != KindContacts && kind != KindCompanies {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "kind must be contacts or companies"}
	}

	var out SearchOutput
	found, err := uc.Cache.Get(ctx, userID, kind, &out)
	if err != nil {
		return nil, &TechnicalError{Code: "CACHE_ERROR", Message: "failed to read cached search: " + err.Error()}
	}
	if !found {
		return nil, &DomainError{Code: "NO_CACHED_SEARCH", Message: "no recent search to replay"}
	}

	out.Source = "cache"
	return &out, nil
}

func (uc *SearchUseCase) searchLocal(ctx context.Context, userID int64, input SearchInput) (*SearchOutput, error) {
	prospects, err := uc.ProspectRepo.List(ctx, userID, input.Filters, input.Page, input.Size)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to list prospects: " + err.Error()}
	}

	// Local rows have no vendor requestId, so they can never feed an
	// enrichment call. RequestID stays empty on purpose.
	return &SearchOutput{
		Prospects: prospects,
		Total:     len(prospects),
		Page:      input.Page,
		Size:      input.Size,
		Source:    TargetLocal,
	}, nil
}

func (uc *SearchUseCase) searchVendor(ctx context.Context, userID int64, input SearchInput) (*SearchOutput, error) {
	var result *lusha.SearchResult
	var err error

	if input.Kind == KindCompanies {
		result, err = uc.Gateway.SearchCompanies(ctx, filter.BuildCompanyFilters(input.Filters), input.Page, input.Size)
	} else {
		result, err = uc.Gateway.SearchContacts(ctx, filter.BuildContactFilters(input.Filters), input.Page, input.Size)
	}

	if err != nil {
		// A vendor failure is not the caller's fault and not fatal: the
		// search comes back empty with the reason attached, and nothing
		// is cached.
		log.Printf("vendor search failed (user=%d kind=%s): %v", userID, input.Kind, err)
		return &SearchOutput{
			Prospects:   []entity.Prospect{},
			Page:        input.Page,
			Size:        input.Size,
			Source:      TargetVendor,
			ErrorReason: err.Error(),
		}, nil
	}

	out := &SearchOutput{
		RequestID: result.RequestID,
		Total:     result.Total,
		Page:      input.Page,
		Size:      input.Size,
		Source:    TargetVendor,
	}

	if input.Kind == KindCompanies {
		out.Companies = result.Records
	} else {
		out.Prospects = make([]entity.Prospect, 0, len(result.Records))
		for _, record := range result.Records {
			out.Prospects = append(out.Prospects, NormalizeContact(record))
		}
	}

	if err := uc.Cache.Put(ctx, userID, input.Kind, out); err != nil {
		// Cache loss only breaks replay, not the search itself.
		log.Printf("failed to cache search result (user=%d kind=%s): %v", userID, input.Kind, err)
	}

	return out, nil
}
