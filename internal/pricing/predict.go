package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// Model is a fitted regression that maps one feature vector to a price.
type Model interface {
	NumFeatures() int
	Predict(x []float64) (float64, error)
}

// Predict runs the model on a single vector and rounds the estimate to two
// decimal places. A vector whose length differs from the model input is
// rejected; it is never padded or truncated.
func Predict(x FeatureVector, model Model) (float64, error) {
	if len(x) != model.NumFeatures() {
		return 0, fmt.Errorf("%w: feature vector has %d values, model expects %d",
			ErrPrediction, len(x), model.NumFeatures())
	}

	y, err := model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: model returned %v", ErrPrediction, y)
	}

	return Round2(y), nil
}

// Round2 rounds to two decimal places using the exact decimal value of v, so
// 2.675 (stored as 2.67499...) becomes 2.67.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	return r
}
