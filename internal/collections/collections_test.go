package collections

import "testing"

func TestList(t *testing.T) {
	cs, err := List(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cs) != 6 || cs[0].Slug != "modern-kitchens" || cs[5].Slug != "storage-solutions" {
		t.Fatalf("unexpected collections: %d", len(cs))
	}
	for _, c := range cs {
		if c.Title == "" || len(c.Images) == 0 || c.PriceRange == "" || c.DeliveryTime == "" {
			t.Fatalf("incomplete collection %q", c.Slug)
		}
	}

	popular, _ := List(true)
	if len(popular) != 2 || popular[0].Slug != "modern-kitchens" || popular[1].Slug != "luxury-sofas" {
		t.Fatalf("unexpected popular set: %+v", popular)
	}
}

func TestBySlug(t *testing.T) {
	c, ok, err := BySlug("bedroom-sets")
	if err != nil || !ok {
		t.Fatalf("bedroom-sets missing: %v", err)
	}
	if c.PriceRange != "₹1,20,000 - ₹5,00,000" || c.DeliveryTime != "5-7 weeks" {
		t.Fatalf("unexpected collection: %+v", c)
	}
	if _, ok, _ := BySlug("nope"); ok {
		t.Fatalf("unknown slug must miss")
	}
}
