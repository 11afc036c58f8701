package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
)

func TestSearchUseCase_VendorContacts(t *testing.T) {
	gateway := new(MockVendorGateway)
	repo := new(MockProspectRepository)
	cache := newFakeSearchCache()
	uc := NewSearchUseCase(gateway, repo, cache)

	// A "CEOs in Malaysia" search must reach the vendor with the job title
	// verbatim and the country wrapped as a location object.
	gateway.On("SearchContacts", mock.Anything, mock.MatchedBy(func(f filter.VendorFilters) bool {
		return f.Contacts != nil &&
			len(f.Contacts.JobTitles) == 1 && f.Contacts.JobTitles[0] == "CEO" &&
			len(f.Contacts.Locations) == 1 && f.Contacts.Locations[0].Country == "Malaysia"
	}), 0, 25).Return(&lusha.SearchResult{
		RequestID: "req-abc",
		Total:     2,
		Records: []map[string]any{
			{"contactId": "c-1", "fullName": "Jane Doe", "position": "CEO", "location": "Malaysia", "companyName": "Acme"},
			{"contactId": "c-2", "name": "John Roe", "jobTitle": "CEO", "country": "Malaysia"},
		},
	}, nil)

	out, err := uc.Execute(context.Background(), 7, SearchInput{
		Target: TargetVendor,
		Kind:   KindContacts,
		Filters: entity.FilterSet{
			JobTitles: []string{"CEO"},
			Locations: []entity.LocationCriterion{{Country: "Malaysia"}},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "req-abc", out.RequestID)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, TargetVendor, out.Source)
	assert.Len(t, out.Prospects, 2)

	// Aliases resolved, sentinel applied.
	assert.Equal(t, "Jane Doe", out.Prospects[0].Name)
	assert.Equal(t, "CEO", out.Prospects[0].JobTitle)
	assert.Equal(t, "Acme", out.Prospects[0].CompanyName)
	assert.Equal(t, "John Roe", out.Prospects[1].Name)
	assert.Equal(t, "Malaysia", out.Prospects[1].Location)
	assert.Equal(t, entity.NotAvailable, out.Prospects[1].CompanyName)

	// The result must be replayable.
	replay, err := uc.LastSearch(context.Background(), 7, KindContacts)
	assert.NoError(t, err)
	assert.Equal(t, "req-abc", replay.RequestID)
	assert.Equal(t, "cache", replay.Source)

	gateway.AssertExpectations(t)
}

func TestSearchUseCase_VendorFailure(t *testing.T) {
	gateway := new(MockVendorGateway)
	repo := new(MockProspectRepository)
	cache := newFakeSearchCache()
	uc := NewSearchUseCase(gateway, repo, cache)

	gateway.On("SearchContacts", mock.Anything, mock.Anything, 0, 25).
		Return(nil, errors.New("vendor unavailable"))

	out, err := uc.Execute(context.Background(), 7, SearchInput{Target: TargetVendor, Kind: KindContacts})

	// Vendor failure degrades to an empty result, it does not error out.
	assert.NoError(t, err)
	assert.Empty(t, out.Prospects)
	assert.Equal(t, "vendor unavailable", out.ErrorReason)
	assert.Empty(t, out.RequestID)

	// And nothing was cached for replay.
	assert.Empty(t, cache.entries)
}

func TestSearchUseCase_Local(t *testing.T) {
	gateway := new(MockVendorGateway)
	repo := new(MockProspectRepository)
	cache := newFakeSearchCache()
	uc := NewSearchUseCase(gateway, repo, cache)

	fs := entity.FilterSet{JobTitles: []string{"CTO"}}
	repo.On("List", mock.Anything, int64(7), fs, 0, 25).
		Return([]entity.Prospect{{ID: 1, Name: "Stored Person"}}, nil)

	out, err := uc.Execute(context.Background(), 7, SearchInput{Target: TargetLocal, Kind: KindContacts, Filters: fs})

	assert.NoError(t, err)
	assert.Equal(t, TargetLocal, out.Source)
	assert.Len(t, out.Prospects, 1)
	// Local rows carry no vendor requestId.
	assert.Empty(t, out.RequestID)

	gateway.AssertNotCalled(t, "SearchContacts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSearchUseCase_InvalidTarget(t *testing.T) {
	gateway := new(MockVendorGateway)
	uc := NewSearchUseCase(gateway, new(MockProspectRepository), newFakeSearchCache())

	out, err := uc.Execute(context.Background(), 7, SearchInput{Target: "federated", Kind: KindContacts})

	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
	gateway.AssertNotCalled(t, "SearchContacts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchUseCase_LastSearch_Empty(t *testing.T) {
	uc := NewSearchUseCase(new(MockVendorGateway), new(MockProspectRepository), newFakeSearchCache())

	out, err := uc.LastSearch(context.Background(), 7, KindContacts)

	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))
}

func TestSearchUseCase_VendorCompanies(t *testing.T) {
	gateway := new(MockVendorGateway)
	uc := NewSearchUseCase(gateway, new(MockProspectRepository), newFakeSearchCache())

	gateway.On("SearchCompanies", mock.Anything, mock.Anything, 0, 25).Return(&lusha.SearchResult{
		RequestID: "req-co",
		Total:     1,
		Records:   []map[string]any{{"id": "co-1", "name": "Acme"}},
	}, nil)

	out, err := uc.Execute(context.Background(), 7, SearchInput{Target: TargetVendor, Kind: KindCompanies})

	assert.NoError(t, err)
	assert.Len(t, out.Companies, 1)
	assert.Empty(t, out.Prospects)
	gateway.AssertNotCalled(t, "SearchContacts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
