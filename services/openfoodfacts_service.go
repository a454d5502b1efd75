package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const offPageSize = 20

type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodProduct is the mapped Open Food Facts product the clients consume.
type FoodProduct struct {
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	NutritionPer100g Nutrition `json:"nutrition_per_100g"`
	ServingGrams     float64   `json:"serving_grams"`
}

type FoodSearchResult struct {
	Products []FoodProduct `json:"products"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	HasMore  bool          `json:"has_more"`
}

type offProduct struct {
	Code            string         `json:"code"`
	ProductName     string         `json:"product_name"`
	ProductNameFr   string         `json:"product_name_fr"`
	Brands          string         `json:"brands"`
	ImageFrontSmall string         `json:"image_front_small_url"`
	ImageURL        string         `json:"image_url"`
	Nutriments      map[string]any `json:"nutriments"`
	ServingQuantity any            `json:"serving_quantity"`
}

type offSearchResponse struct {
	Count    int          `json:"count"`
	Products []offProduct `json:"products"`
}

type offProductResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

// Search queries the Open Food Facts text search endpoint.
func (s *OpenFoodFactsService) Search(query string, page int) (*FoodSearchResult, error) {
	if page <= 0 {
		page = 1
	}
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page=%d&page_size=%d"+
			"&fields=code,product_name,product_name_fr,brands,image_front_small_url,nutriments,serving_quantity",
		s.baseURL, url.QueryEscape(query), page, offPageSize,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts search error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse Open Food Facts JSON: %w", err)
	}

	products := make([]FoodProduct, 0, len(sr.Products))
	for _, p := range sr.Products {
		if p.ProductName == "" && p.ProductNameFr == "" {
			continue
		}
		products = append(products, mapOFFProduct(p))
	}

	return &FoodSearchResult{
		Products: products,
		Total:    sr.Count,
		Page:     page,
		HasMore:  page*offPageSize < sr.Count,
	}, nil
}

// Barcode looks one product up by its EAN code.
func (s *OpenFoodFactsService) Barcode(code string) (*FoodProduct, error) {
	u := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(code))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts product API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts product error %d: %s", resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Open Food Facts JSON: %w", err)
	}
	if pr.Status != 1 || pr.Product == nil {
		return nil, fmt.Errorf("product %s not found", code)
	}

	out := mapOFFProduct(*pr.Product)
	return &out, nil
}

// mapOFFProduct normalizes a raw product at the boundary: the French name
// wins over the generic one, numeric fields are coerced (OFF sometimes ships
// them as strings), and absent nutriments become zero.
func mapOFFProduct(p offProduct) FoodProduct {
	name := p.ProductNameFr
	if name == "" {
		name = p.ProductName
	}

	image := p.ImageFrontSmall
	if image == "" {
		image = p.ImageURL
	}

	serving := coerceFloat(p.ServingQuantity)
	if serving <= 0 {
		serving = 100
	}

	return FoodProduct{
		Code:     p.Code,
		Name:     name,
		Brand:    p.Brands,
		ImageURL: image,
		NutritionPer100g: Nutrition{
			Calories: math.Round(nutriment(p.Nutriments, "energy-kcal_100g", "energy-kcal")),
			Protein:  round1(nutriment(p.Nutriments, "proteins_100g", "proteins")),
			Carbs:    round1(nutriment(p.Nutriments, "carbohydrates_100g", "carbohydrates")),
			Fat:      round1(nutriment(p.Nutriments, "fat_100g", "fat")),
		},
		ServingGrams: serving,
	}
}

func nutriment(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f := coerceFloat(v); f != 0 {
				return f
			}
		}
	}
	return 0
}

func coerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
