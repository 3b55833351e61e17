package product

import "testing"

func sampleCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Bananas", Category: "Fruit", Price: 3},
		{ID: 2, Name: "Whole Milk", Category: "Dairy", Price: 4},
		{ID: 3, Name: "Cheddar Cheese", Category: "Dairy", Price: 9},
		{ID: 4, Name: "Sourdough Bread", Category: "Bakery", Price: 6},
		{ID: 5, Name: "Green Apples", Category: "Fruit", Price: 5},
	}
}

func TestFilter_SubstringMatchesNameOrCategory(t *testing.T) {
	catalog := sampleCatalog()

	// matches name, case-insensitive
	got := Filter(catalog, "CHEE", "")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected cheddar only, got %+v", got)
	}

	// matches category
	got = Filter(catalog, "dai", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 dairy products, got %d", len(got))
	}
}

func TestFilter_CategoryIntersection(t *testing.T) {
	catalog := sampleCatalog()

	got := Filter(catalog, "a", "Fruit")
	if len(got) != 2 {
		t.Fatalf("expected bananas and apples, got %+v", got)
	}

	// "All" bypasses the category filter
	all := Filter(catalog, "", AllCategories)
	if len(all) != len(catalog) {
		t.Fatalf("expected all %d products, got %d", len(catalog), len(all))
	}
}

func TestFilter_NoMatchReturnsEmptySlice(t *testing.T) {
	got := Filter(sampleCatalog(), "zzz-nothing", "")
	if got == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	Filter(catalog, "milk", "Dairy")
	if catalog[1].Name != "Whole Milk" {
		t.Fatal("filter must not mutate its input")
	}
}
