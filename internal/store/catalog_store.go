// Package store holds the in-memory state of a running shop process. Nothing
// here persists: a restart resets the catalog to its seed and drops carts,
// sessions and orders. Stores are mutex-guarded because the HTTP host runs
// handlers concurrently; every operation is a single step.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"aquashop/internal/domain"
)

var ErrNotFound = errors.New("not found")

// PlaceholderImage is used when an admin creates a listing without a photo.
const PlaceholderImage = "https://images.unsplash.com/photo-1522069169874-c58ec4b76be5?auto=format&fit=crop&q=80&w=800"

// CatalogStore owns the sellable listings. The backing slice keeps insertion
// order; List and the shop view rely on that.
type CatalogStore struct {
	mu   sync.RWMutex
	fish []domain.Fish
}

func NewCatalogStore(seed []domain.Fish) *CatalogStore {
	s := &CatalogStore{fish: make([]domain.Fish, len(seed))}
	copy(s.fish, seed)
	return s
}

// List returns all listings in insertion order.
func (s *CatalogStore) List() []domain.Fish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Fish, len(s.fish))
	copy(out, s.fish)
	return out
}

func (s *CatalogStore) Get(id string) (domain.Fish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.fish {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.Fish{}, ErrNotFound
}

// Create appends a new listing with a generated id. Unset image and category
// get defaults; field presence is the admin form's responsibility.
func (s *CatalogStore) Create(f domain.Fish) domain.Fish {
	f.ID = uuid.NewString()
	if f.ImageURL == "" {
		f.ImageURL = PlaceholderImage
	}
	if f.Category == "" {
		f.Category = domain.CategoryFreshwater
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fish = append(s.fish, f)
	return f
}

// FishPatch carries the fields an update wants to change; nil means keep.
type FishPatch struct {
	Name           *string
	ScientificName *string
	Price          *float64
	OriginalPrice  *float64
	Stock          *int
	Description    *string
	ImageURL       *string
	Category       *string
	Habitat        *string
}

// Update merges patch over the stored record. Unknown ids report ErrNotFound.
func (s *CatalogStore) Update(id string, patch FishPatch) (domain.Fish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fish {
		if s.fish[i].ID != id {
			continue
		}
		f := &s.fish[i]
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.ScientificName != nil {
			f.ScientificName = *patch.ScientificName
		}
		if patch.Price != nil {
			f.Price = *patch.Price
		}
		if patch.OriginalPrice != nil {
			f.OriginalPrice = *patch.OriginalPrice
		}
		if patch.Stock != nil {
			f.Stock = *patch.Stock
		}
		if patch.Description != nil {
			f.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			f.ImageURL = *patch.ImageURL
		}
		if patch.Category != nil {
			f.Category = *patch.Category
		}
		if patch.Habitat != nil {
			f.Habitat = *patch.Habitat
		}
		return *f, nil
	}
	return domain.Fish{}, ErrNotFound
}

// Remove deletes the listing. Removing an unknown id is a no-op.
func (s *CatalogStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fish {
		if s.fish[i].ID == id {
			s.fish = append(s.fish[:i], s.fish[i+1:]...)
			return
		}
	}
}
