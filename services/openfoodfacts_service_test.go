package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestOFFService(handler http.Handler) (*OpenFoodFactsService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &OpenFoodFactsService{
		baseURL: srv.URL,
		client:  &http.Client{Timeout: time.Second},
	}, srv
}

func TestOFFSearch(t *testing.T) {
	svc, srv := newTestOFFService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cgi/search.pl" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search_terms"); got != "yaourt nature" {
			t.Errorf("search_terms = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 45,
			"products": [
				{
					"code": "3033490004521",
					"product_name": "Plain yogurt",
					"product_name_fr": "Yaourt nature",
					"brands": "Danone",
					"nutriments": {"energy-kcal_100g": 58.3, "proteins_100g": "4.1", "carbohydrates_100g": 4.5, "fat_100g": 3.2},
					"serving_quantity": "125"
				},
				{
					"code": "000",
					"nutriments": {}
				}
			]
		}`))
	}))
	defer srv.Close()

	got, err := svc.Search("yaourt nature", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nameless products are dropped.
	if len(got.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(got.Products))
	}
	p := got.Products[0]
	if p.Name != "Yaourt nature" {
		t.Errorf("Name = %q, want the French name", p.Name)
	}
	if p.NutritionPer100g.Calories != 58 {
		t.Errorf("Calories = %v, want 58", p.NutritionPer100g.Calories)
	}
	// String-encoded numbers are coerced.
	if p.NutritionPer100g.Protein != 4.1 {
		t.Errorf("Protein = %v, want 4.1", p.NutritionPer100g.Protein)
	}
	if p.ServingGrams != 125 {
		t.Errorf("ServingGrams = %v, want 125", p.ServingGrams)
	}
	if got.Total != 45 || !got.HasMore {
		t.Errorf("Total = %d, HasMore = %v, want 45/true", got.Total, got.HasMore)
	}
}

func TestOFFBarcode(t *testing.T) {
	svc, srv := newTestOFFService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/product/3033490004521.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"code": "3033490004521",
				"product_name": "Plain yogurt",
				"nutriments": {"energy-kcal": 58, "proteins": 4.1}
			}
		}`))
	}))
	defer srv.Close()

	got, err := svc.Barcode("3033490004521")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Plain yogurt" {
		t.Errorf("Name = %q", got.Name)
	}
	// Fallback nutriment keys and default serving apply.
	if got.NutritionPer100g.Calories != 58 {
		t.Errorf("Calories = %v, want 58", got.NutritionPer100g.Calories)
	}
	if got.ServingGrams != 100 {
		t.Errorf("ServingGrams = %v, want 100", got.ServingGrams)
	}
}

func TestOFFBarcodeNotFound(t *testing.T) {
	svc, srv := newTestOFFService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 0}`))
	}))
	defer srv.Close()

	if _, err := svc.Barcode("404404"); err == nil {
		t.Error("expected error for unknown barcode")
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 4.5, 4.5},
		{"string", "4.5", 4.5},
		{"bad string", "n/a", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceFloat(tt.in); got != tt.want {
				t.Errorf("coerceFloat(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
