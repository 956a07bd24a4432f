package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidCoordinates(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("coordinates", validCoordinates); err != nil {
		t.Fatalf("register validation: %v", err)
	}

	type payload struct {
		Coordinates []float64 `validate:"required,coordinates"`
	}

	cases := []struct {
		name   string
		coords []float64
		valid  bool
	}{
		{"beirut", []float64{35.5018, 33.8938}, true},
		{"bounds", []float64{-180, 90}, true},
		{"longitude out of range", []float64{181, 0}, false},
		{"latitude out of range", []float64{0, -91}, false},
		{"too few values", []float64{35.5}, false},
		{"too many values", []float64{35.5, 33.8, 12}, false},
	}

	for _, tc := range cases {
		err := v.Struct(payload{Coordinates: tc.coords})
		if tc.valid && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected validation failure", tc.name)
		}
	}
}
