package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// FoodService composes the food database lookups and the photo pipeline.
type FoodService struct {
	off *OpenFoodFactsService
	rek *RekognitionService
}

func NewFoodService(off *OpenFoodFactsService, rek *RekognitionService) *FoodService {
	return &FoodService{off: off, rek: rek}
}

func (s *FoodService) Search(query string, page int) (*FoodSearchResult, error) {
	return s.off.Search(query, page)
}

func (s *FoodService) Barcode(code string) (*FoodProduct, error) {
	return s.off.Barcode(code)
}

// AnalyzePhoto recognizes what is on a food photo and resolves the detected
// labels against the food database, returning candidate products.
func (s *FoodService) AnalyzePhoto(ctx context.Context, base64Img string) ([]FoodProduct, error) {
	if s.rek == nil {
		return nil, fmt.Errorf("photo recognition is not configured")
	}
	labels, err := s.rek.RecognizeLabels(ctx, base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no food detected on the image")
	}
	logrus.WithField("labels", labels).Debug("photo analysis labels")

	result, err := s.off.Search(labels[0], 1)
	if err != nil {
		return nil, err
	}
	if len(result.Products) == 0 {
		return nil, fmt.Errorf("no match for %q in the food database", labels[0])
	}
	return result.Products, nil
}
