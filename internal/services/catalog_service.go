package services

import (
	"sort"
	"strings"

	"aquashop/internal/domain"
	"aquashop/internal/store"
)

type CatalogService struct {
	Catalog *store.CatalogStore
}

func NewCatalogService(catalog *store.CatalogStore) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

func (s *CatalogService) List() []domain.Fish {
	return s.Catalog.List()
}

func (s *CatalogService) Get(id string) (domain.Fish, error) {
	return s.Catalog.Get(id)
}

// Filter narrows the catalog by case-insensitive name substring AND category
// equality. An empty query matches every name; CategoryAll matches every
// category. Catalog order is preserved.
func (s *CatalogService) Filter(query, category string) []domain.Fish {
	q := strings.ToLower(query)
	var out []domain.Fish
	for _, f := range s.Catalog.List() {
		if !strings.Contains(strings.ToLower(f.Name), q) {
			continue
		}
		if category != domain.CategoryAll && f.Category != category {
			continue
		}
		out = append(out, f)
	}
	return out
}

// SortBy orders items by unit price. The sort is stable: price ties keep
// their relative order, and SortDefault leaves the input untouched.
func (s *CatalogService) SortBy(items []domain.Fish, mode string) []domain.Fish {
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}
	return items
}

// Browse is the shop view's read path: filter then sort.
func (s *CatalogService) Browse(query, category, mode string) []domain.Fish {
	return s.SortBy(s.Filter(query, category), mode)
}

func (s *CatalogService) Create(f domain.Fish) domain.Fish {
	return s.Catalog.Create(f)
}

func (s *CatalogService) Update(id string, patch store.FishPatch) (domain.Fish, error) {
	return s.Catalog.Update(id, patch)
}

func (s *CatalogService) Remove(id string) {
	s.Catalog.Remove(id)
}

// Availability maps a listing's stock count to the badge shown on cards.
func (s *CatalogService) Availability(id string) (domain.Availability, error) {
	f, err := s.Catalog.Get(id)
	if err != nil {
		return domain.Availability{}, err
	}
	status := "OUT_OF_STOCK"
	switch {
	case f.Stock >= 5:
		status = "IN_STOCK"
	case f.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: f.Stock}, nil
}
