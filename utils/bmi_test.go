package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	got, err := CalculateBMI(175, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-22.857) > 0.001 {
		t.Errorf("BMI = %v, want ~22.857", got)
	}

	if _, err := CalculateBMI(0, 70); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := CalculateBMI(175, 500); err == nil {
		t.Error("expected error for implausible weight")
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{37, "Obesity class II"},
		{42, "Obesity class III"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %s, want %s", tt.bmi, got, tt.want)
		}
	}
}
