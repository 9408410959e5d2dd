package pricing

import (
	"errors"
	"math"
	"testing"

	"delhihomes/internal/artifacts"
)

type stubModel struct {
	n   int
	y   float64
	err error
}

func (m stubModel) NumFeatures() int { return m.n }

func (m stubModel) Predict(x []float64) (float64, error) { return m.y, m.err }

func TestPredictWrongLength(t *testing.T) {
	model := stubModel{n: 5, y: 42}

	for _, n := range []int{0, 4, 6} {
		price, err := Predict(make(FeatureVector, n), model)
		if !errors.Is(err, ErrPrediction) {
			t.Errorf("Predict(len %d) error = %v, want ErrPrediction", n, err)
		}
		if price != 0 {
			t.Errorf("Predict(len %d) = %v alongside an error", n, price)
		}
	}
}

func TestPredictRounds(t *testing.T) {
	tests := []struct {
		y    float64
		want float64
	}{
		{85.4567, 85.46},
		{85.4549, 85.45},
		{2.675, 2.67},
		{100, 100},
		{-12.345678, -12.35},
	}
	for _, tt := range tests {
		got, err := Predict(make(FeatureVector, 3), stubModel{n: 3, y: tt.y})
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Predict() with model output %v = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestPredictModelFailure(t *testing.T) {
	tests := []stubModel{
		{n: 3, err: errors.New("boom")},
		{n: 3, y: math.NaN()},
		{n: 3, y: math.Inf(1)},
	}
	for _, model := range tests {
		if _, err := Predict(make(FeatureVector, 3), model); !errors.Is(err, ErrPrediction) {
			t.Errorf("Predict() error = %v, want ErrPrediction", err)
		}
	}
}

func TestEstimator(t *testing.T) {
	a, err := artifacts.New(
		[]string{"sqft", "bath", "bhk", "indirapuram", "dwarka"},
		[]float64{0.05, 4, 2, 10, 25},
		-3,
	)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEstimator(a)

	got, err := e.Estimate("Dwarka", 1200, 3, 2)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	// -3 + 60 + 8 + 6 + 25
	if got.Price != 96 || !got.KnownLocation {
		t.Errorf("Estimate() = %+v, want {Price:96 KnownLocation:true}", got)
	}

	got, err = e.Estimate("Rohini", 1200, 3, 2)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if got.Price != 71 || got.KnownLocation {
		t.Errorf("Estimate() = %+v, want {Price:71 KnownLocation:false}", got)
	}

	if locs := e.Locations(); len(locs) != 2 || locs[0] != "indirapuram" || locs[1] != "dwarka" {
		t.Errorf("Locations() = %v", locs)
	}
	if e.NumFeatures() != 5 {
		t.Errorf("NumFeatures() = %d, want 5", e.NumFeatures())
	}
}

func TestEstimatorNegativePriceIsNotClamped(t *testing.T) {
	a, err := artifacts.New([]string{"sqft", "bath", "bhk"}, []float64{0.001, 0, 0}, -50)
	if err != nil {
		t.Fatal(err)
	}

	got, err := NewEstimator(a).Estimate("anywhere", 1000, 1, 1)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if got.Price != -49 {
		t.Errorf("Estimate().Price = %v, want -49", got.Price)
	}
}
