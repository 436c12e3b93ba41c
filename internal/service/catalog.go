package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"menuproxy-api/internal/cache"
	"menuproxy-api/internal/model"
	"menuproxy-api/internal/transform"
	"menuproxy-api/internal/upstream"
	"menuproxy-api/pkg/apierror"
)

// DefaultTTL is the cache lifetime used when none is configured.
const DefaultTTL = 5 * time.Minute

// CatalogService orchestrates upstream fetches, catalog transformation
// and caching for the menu queries. Each query runs independently; two
// concurrent misses for the same key both do the full fetch, which is
// acceptable under TTL-bounded staleness.
type CatalogService struct {
	cache    cache.Provider
	upstream upstream.API
	ttl      time.Duration
}

// NewCatalogService creates a new catalog service.
// Returns nil if either dependency is missing.
func NewCatalogService(provider cache.Provider, api upstream.API, ttl time.Duration) *CatalogService {
	if provider == nil || api == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &CatalogService{
		cache:    provider,
		upstream: api,
		ttl:      ttl,
	}
}

// Locations returns the active upstream locations, cached under a single
// key. Inactive locations are dropped; an unset timezone defaults to UTC.
func (s *CatalogService) Locations(ctx context.Context) (*model.LocationList, error) {
	key := cache.LocationsKey()

	var cached model.LocationList
	hit, err := s.lookup(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	upstreamLocations, err := s.upstream.ListLocations(ctx)
	if err != nil {
		log.Printf("[CatalogService] Locations fetch failed: %v", err)
		return nil, apierror.Upstream("")
	}

	result := &model.LocationList{Locations: make([]model.Location, 0, len(upstreamLocations))}
	for _, loc := range upstreamLocations {
		if loc.Status != upstream.LocationStatusActive {
			continue
		}
		result.Locations = append(result.Locations, toLocation(loc))
	}

	if err := s.store(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Catalog returns the denormalized, category-grouped menu for a location.
// An empty menu for a valid location is a legitimate state and is cached
// with the same TTL as a non-empty one.
func (s *CatalogService) Catalog(ctx context.Context, locationID string) (*model.Catalog, error) {
	key := cache.CatalogKey(locationID)

	var cached model.Catalog
	hit, err := s.lookup(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	items, related, truncated, err := s.fetchCatalogObjects(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.Catalog{Categories: []model.CategoryGroup{}, Truncated: truncated}
	if available := transform.FilterByLocation(items, locationID); len(available) > 0 {
		result.Categories = transform.GroupByCategory(available, transform.NewIndex(related))
	}

	if err := s.store(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Categories returns the categories-with-counts view for a location.
func (s *CatalogService) Categories(ctx context.Context, locationID string) (*model.CategoryList, error) {
	key := cache.CategoriesKey(locationID)

	var cached model.CategoryList
	hit, err := s.lookup(ctx, key, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		return &cached, nil
	}

	items, related, truncated, err := s.fetchCatalogObjects(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.CategoryList{Categories: []model.CategoryCount{}, Truncated: truncated}
	if available := transform.FilterByLocation(items, locationID); len(available) > 0 {
		result.Categories = transform.CategoriesWithCounts(available, transform.NewIndex(related))
	}

	if err := s.store(ctx, key, result); err != nil {
		return nil, err
	}
	return result, nil
}

// InvalidateCatalog clears every cached catalog and categories view.
// The locations key is deliberately left alone: location data changes far
// less often and catalog change events say nothing about it. Clearing
// already-empty prefixes is a no-op.
func (s *CatalogService) InvalidateCatalog(ctx context.Context) error {
	for _, prefix := range []string{cache.CatalogPrefix(), cache.CategoriesPrefix()} {
		if err := s.cache.Clear(ctx, prefix); err != nil {
			log.Printf("[CatalogService] Cache clear failed for prefix %q: %v", prefix, err)
			return apierror.Upstream("")
		}
	}
	log.Printf("[CatalogService] Catalog caches invalidated")
	return nil
}

// fetchCatalogObjects drains every catalog search page, keeping the
// related objects from all pages: a reference can resolve against a
// different page than the one its item arrived on.
func (s *CatalogService) fetchCatalogObjects(ctx context.Context) (items, related []upstream.CatalogObject, truncated bool, err error) {
	items, truncated, err = upstream.CollectPages(ctx, func(ctx context.Context, cursor string) (upstream.Page[upstream.CatalogObject], error) {
		page, err := s.upstream.SearchCatalog(ctx, cursor)
		if err != nil {
			return upstream.Page[upstream.CatalogObject]{}, err
		}
		related = append(related, page.RelatedObjects...)
		return upstream.Page[upstream.CatalogObject]{Objects: page.Objects, Cursor: page.Cursor}, nil
	})
	if err != nil {
		log.Printf("[CatalogService] Catalog fetch failed: %v", err)
		return nil, nil, false, apierror.Upstream("")
	}
	if truncated {
		log.Printf("[CatalogService] Catalog aggregation hit the page ceiling; result truncated")
	}
	return items, related, truncated, nil
}

// lookup reads and decodes a cached value. A miss reports hit=false; any
// other provider failure propagates, because a down cache masquerading as
// empty would hide the outage behind a refetch storm.
func (s *CatalogService) lookup(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		log.Printf("[CatalogService] Cache get failed for %q: %v", key, err)
		return false, apierror.Upstream("")
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt entry: treat as a miss and rebuild.
		log.Printf("[CatalogService] Corrupt cache entry for %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// store marshals and caches a freshly built result under the configured TTL.
func (s *CatalogService) store(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %q: %w", key, err)
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Printf("[CatalogService] Cache set failed for %q: %v", key, err)
		return apierror.Upstream("")
	}
	return nil
}

// toLocation maps an upstream location into the response shape. Address
// sub-fields are individually optional.
func toLocation(loc upstream.Location) model.Location {
	out := model.Location{
		ID:       loc.ID,
		Name:     loc.Name,
		Timezone: loc.Timezone,
		Status:   loc.Status,
	}
	if out.Timezone == "" {
		out.Timezone = "UTC"
	}
	if loc.Address != nil {
		out.Address = model.Address{
			Line1:      loc.Address.AddressLine1,
			Line2:      loc.Address.AddressLine2,
			City:       loc.Address.Locality,
			State:      loc.Address.AdministrativeDistrictLevel1,
			PostalCode: loc.Address.PostalCode,
			Country:    loc.Address.Country,
		}
	}
	return out
}
