package services_test

import (
	"testing"

	"aquashop/internal/domain"
	"aquashop/internal/services"
	"aquashop/internal/store"
)

func catalogFixture() *services.CatalogService {
	return services.NewCatalogService(store.NewCatalogStore([]domain.Fish{
		{ID: "1", Name: "Red Cap Oranda", Price: 850, Stock: 12, Category: domain.CategoryFreshwater},
		{ID: "2", Name: "Golden Arowana", Price: 18000, Stock: 3, Category: domain.CategoryExotic},
		{ID: "3", Name: "Neon Tetra", Price: 600, Stock: 40, Category: domain.CategoryFreshwater},
		{ID: "4", Name: "Clownfish Pair", Price: 1800, Stock: 5, Category: domain.CategorySaltwater},
		{ID: "5", Name: "Anubias Driftwood", Price: 600, Stock: 15, Category: domain.CategoryAccessories},
	}))
}

func ids(items []domain.Fish) []string {
	out := make([]string, len(items))
	for i, f := range items {
		out[i] = f.ID
	}
	return out
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_EmptyQueryAllCategoryReturnsEverything(t *testing.T) {
	svc := catalogFixture()
	got := svc.Filter("", domain.CategoryAll)
	if !sameIDs(ids(got), "1", "2", "3", "4", "5") {
		t.Fatalf("want full catalog in order, got %v", ids(got))
	}
}

func TestFilter_NameIsCaseInsensitiveSubstring(t *testing.T) {
	svc := catalogFixture()
	got := svc.Filter("ORANDA", domain.CategoryAll)
	if !sameIDs(ids(got), "1") {
		t.Fatalf("want [1], got %v", ids(got))
	}
	got = svc.Filter("an", domain.CategoryAll) // Oranda, Arowana, Anubias
	if !sameIDs(ids(got), "1", "2", "5") {
		t.Fatalf("want [1 2 5], got %v", ids(got))
	}
}

func TestFilter_CategoryIsExactAndAndedWithQuery(t *testing.T) {
	svc := catalogFixture()
	got := svc.Filter("", domain.CategoryFreshwater)
	if !sameIDs(ids(got), "1", "3") {
		t.Fatalf("want [1 3], got %v", ids(got))
	}
	got = svc.Filter("tetra", domain.CategorySaltwater)
	if len(got) != 0 {
		t.Fatalf("both predicates must hold, got %v", ids(got))
	}
}

func TestSortBy_PriceModesAndStability(t *testing.T) {
	svc := catalogFixture()

	asc := svc.Browse("", domain.CategoryAll, domain.SortPriceAsc)
	// 3 and 5 tie at 600; catalog order must survive the tie
	if !sameIDs(ids(asc), "3", "5", "1", "4", "2") {
		t.Fatalf("ascending: got %v", ids(asc))
	}

	desc := svc.Browse("", domain.CategoryAll, domain.SortPriceDesc)
	if !sameIDs(ids(desc), "2", "4", "1", "3", "5") {
		t.Fatalf("descending: got %v", ids(desc))
	}

	def := svc.Browse("", domain.CategoryAll, domain.SortDefault)
	if !sameIDs(ids(def), "1", "2", "3", "4", "5") {
		t.Fatalf("default must keep catalog order, got %v", ids(def))
	}
}

func TestSortBy_DescIsReverseOfAscWithoutTies(t *testing.T) {
	svc := services.NewCatalogService(store.NewCatalogStore([]domain.Fish{
		{ID: "a", Name: "A", Price: 300},
		{ID: "b", Name: "B", Price: 100},
		{ID: "c", Name: "C", Price: 200},
	}))
	asc := ids(svc.Browse("", domain.CategoryAll, domain.SortPriceAsc))
	desc := ids(svc.Browse("", domain.CategoryAll, domain.SortPriceDesc))
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc must mirror asc: asc=%v desc=%v", asc, desc)
		}
	}
}

func TestAvailability_Thresholds(t *testing.T) {
	svc := catalogFixture()
	cases := []struct {
		id     string
		status string
	}{
		{"3", "IN_STOCK"},  // 40
		{"2", "LOW_STOCK"}, // 3
	}
	for _, tc := range cases {
		a, err := svc.Availability(tc.id)
		if err != nil {
			t.Fatal(err)
		}
		if a.Status != tc.status {
			t.Fatalf("id %s: want %s, got %s", tc.id, tc.status, a.Status)
		}
	}

	zero := 0
	if _, err := svc.Update("2", store.FishPatch{Stock: &zero}); err != nil {
		t.Fatal(err)
	}
	a, err := svc.Availability("2")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "OUT_OF_STOCK" || a.Qty != 0 {
		t.Fatalf("want OUT_OF_STOCK(0), got %+v", a)
	}
}
