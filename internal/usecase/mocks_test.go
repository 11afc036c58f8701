package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
)

// MockVendorGateway
type MockVendorGateway struct {
	mock.Mock
}

func (m *MockVendorGateway) SearchContacts(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error) {
	args := m.Called(ctx, filters, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lusha.SearchResult), args.Error(1)
}

func (m *MockVendorGateway) SearchCompanies(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error) {
	args := m.Called(ctx, filters, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lusha.SearchResult), args.Error(1)
}

func (m *MockVendorGateway) EnrichContacts(ctx context.Context, requestID string, contactIDs []string, revealEmail, revealPhone bool) (*lusha.EnrichResult, error) {
	args := m.Called(ctx, requestID, contactIDs, revealEmail, revealPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lusha.EnrichResult), args.Error(1)
}

// MockProspectRepository
type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) Upsert(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) List(ctx context.Context, userID int64, fs entity.FilterSet, page, size int) ([]entity.Prospect, error) {
	args := m.Called(ctx, userID, fs, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) FindByID(ctx context.Context, id int64) (*entity.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) Create(ctx context.Context, p *entity.Prospect) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProspectRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProspectRepository) Suggestions(ctx context.Context, userID int64) (*entity.FilterSuggestions, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FilterSuggestions), args.Error(1)
}

// MockCompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Upsert(ctx context.Context, c *entity.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// fakeSearchCache is an in-memory stand-in for the Redis-backed cache.
type fakeSearchCache struct {
	entries map[string][]byte
	putErr  error
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string][]byte)}
}

func (c *fakeSearchCache) cacheKey(userID int64, kind string) string {
	return fmt.Sprintf("%d:%s", userID, kind)
}

func (c *fakeSearchCache) Put(ctx context.Context, userID int64, kind string, value any) error {
	if c.putErr != nil {
		return c.putErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[c.cacheKey(userID, kind)] = raw
	return nil
}

func (c *fakeSearchCache) Get(ctx context.Context, userID int64, kind string, out any) (bool, error) {
	raw, ok := c.entries[c.cacheKey(userID, kind)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}
