package services

import "testing"

func TestDrinkOptions(t *testing.T) {
	seen := make(map[string]struct{}, len(DrinkOptions))
	for _, o := range DrinkOptions {
		if _, dup := seen[o.ID]; dup {
			t.Errorf("duplicate drink option id %q", o.ID)
		}
		seen[o.ID] = struct{}{}
		if o.DefaultML <= 0 {
			t.Errorf("option %q has non-positive default amount", o.ID)
		}
		if o.Name == "" || o.Emoji == "" || o.Type == "" {
			t.Errorf("option %q is missing display fields", o.ID)
		}
	}
}

func TestFindDrinkOption(t *testing.T) {
	opt, ok := findDrinkOption("water-glass")
	if !ok {
		t.Fatal("water-glass preset should exist")
	}
	if opt.DefaultML != 250 {
		t.Errorf("water-glass DefaultML = %d, want 250", opt.DefaultML)
	}

	if _, ok := findDrinkOption("wine"); ok {
		t.Error("unknown preset should not resolve")
	}
}
