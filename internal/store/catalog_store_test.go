package store_test

import (
	"testing"

	"aquashop/internal/domain"
	"aquashop/internal/store"
)

func seedFish() []domain.Fish {
	return []domain.Fish{
		{ID: "1", Name: "Oranda", Price: 850, Stock: 12, Category: domain.CategoryFreshwater},
		{ID: "2", Name: "Arowana", Price: 18000, Stock: 3, Category: domain.CategoryExotic},
		{ID: "3", Name: "Clownfish", Price: 1800, Stock: 5, Category: domain.CategorySaltwater},
	}
}

func TestCatalogStore_ListKeepsInsertionOrder(t *testing.T) {
	s := store.NewCatalogStore(seedFish())
	got := s.List()
	if len(got) != 3 {
		t.Fatalf("want 3 listings, got %d", len(got))
	}
	for i, id := range []string{"1", "2", "3"} {
		if got[i].ID != id {
			t.Fatalf("position %d: want id %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestCatalogStore_CreateAppliesDefaults(t *testing.T) {
	s := store.NewCatalogStore(nil)
	f := s.Create(domain.Fish{Name: "Betta", ScientificName: "Betta splendens", Price: 550, Stock: 30, Description: "Show quality"})
	if f.ID == "" {
		t.Fatal("no id generated")
	}
	if f.ImageURL != store.PlaceholderImage {
		t.Fatalf("want placeholder image, got %q", f.ImageURL)
	}
	if f.Category != domain.CategoryFreshwater {
		t.Fatalf("want default category, got %q", f.Category)
	}

	g := s.Create(domain.Fish{Name: "Koi", Category: domain.CategoryExotic, ImageURL: "https://example.com/koi.jpg"})
	if g.ID == f.ID {
		t.Fatal("ids must be unique")
	}
	if g.Category != domain.CategoryExotic || g.ImageURL != "https://example.com/koi.jpg" {
		t.Fatalf("set fields must not be defaulted: %+v", g)
	}
	// appended at the end
	if all := s.List(); all[len(all)-1].ID != g.ID {
		t.Fatal("create must append")
	}
}

func TestCatalogStore_UpdateMergesPartial(t *testing.T) {
	s := store.NewCatalogStore(seedFish())
	price := 900.0
	got, err := s.Update("1", store.FishPatch{Price: &price})
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != 900 {
		t.Fatalf("want price 900, got %v", got.Price)
	}
	if got.Name != "Oranda" || got.Stock != 12 {
		t.Fatalf("unpatched fields must be unchanged: %+v", got)
	}

	if _, err := s.Update("nope", store.FishPatch{Price: &price}); err != store.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalogStore_RemoveIsIdempotent(t *testing.T) {
	s := store.NewCatalogStore(seedFish())
	s.Remove("2")
	s.Remove("2") // second delete is a no-op
	s.Remove("ghost")

	got := s.List()
	if len(got) != 2 {
		t.Fatalf("want 2 listings, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unrelated records must survive: %+v", got)
	}
}

func TestCatalogStore_SeedIsCopied(t *testing.T) {
	seed := seedFish()
	s := store.NewCatalogStore(seed)
	seed[0].Name = "mutated"
	if got, _ := s.Get("1"); got.Name != "Oranda" {
		t.Fatalf("store must not alias the seed slice, got %q", got.Name)
	}
}
