package services

import "testing"

func TestScaleNutrition(t *testing.T) {
	per100g := Nutrition{Calories: 250, Protein: 8.3, Carbs: 30.5, Fat: 11.1}

	tests := []struct {
		name    string
		portion float64
		want    Nutrition
	}{
		{
			name:    "full portion is unchanged",
			portion: 100,
			want:    Nutrition{Calories: 250, Protein: 8.3, Carbs: 30.5, Fat: 11.1},
		},
		{
			name:    "half portion",
			portion: 50,
			want:    Nutrition{Calories: 125, Protein: 4.2, Carbs: 15.3, Fat: 5.5},
		},
		{
			name:    "larger portion",
			portion: 180,
			want:    Nutrition{Calories: 450, Protein: 14.9, Carbs: 54.9, Fat: 20},
		},
		{
			name:    "zero portion",
			portion: 0,
			want:    Nutrition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleNutrition(per100g, tt.portion)
			if got != tt.want {
				t.Errorf("ScaleNutrition(%v g) = %+v, want %+v", tt.portion, got, tt.want)
			}
		})
	}
}
