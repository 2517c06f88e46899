package models

import "testing"

func TestProductNormalizeDerivesInStock(t *testing.T) {
	p := Product{StockQuantity: 3, InStock: false}
	p.Normalize()
	if !p.InStock {
		t.Error("expected inStock to be true for positive stock")
	}

	p.StockQuantity = 0
	p.Normalize()
	if p.InStock {
		t.Error("expected inStock to be false for zero stock")
	}

	p.StockQuantity = -2
	p.Normalize()
	if p.InStock {
		t.Error("expected inStock to be false for negative stock")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Home & Kitchen":  "home-kitchen",
		"  Men's Shoes ":  "men-s-shoes",
		"Électronique 2x": "électronique-2x",
		"---":             "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
