package pricing

import (
	"delhihomes/internal/artifacts"
)

// Estimate is the outcome of pricing one listing.
type Estimate struct {
	// Price is the estimate in lakhs, rounded to two decimals.
	Price float64
	// KnownLocation is false when the location had no manifest column and the
	// estimate was computed without a location indicator.
	KnownLocation bool
}

// Estimator prices listings against one loaded set of artifacts. It holds no
// mutable state and is safe for concurrent use.
type Estimator struct {
	artifacts *artifacts.Artifacts
}

// NewEstimator creates an estimator bound to the given artifacts.
func NewEstimator(a *artifacts.Artifacts) *Estimator {
	return &Estimator{artifacts: a}
}

// Estimate encodes the listing and runs the model on it.
func (e *Estimator) Estimate(location string, sqft, bhk, bath float64) (Estimate, error) {
	manifest := e.artifacts.Manifest

	x := Encode(location, sqft, bhk, bath, manifest)
	price, err := Predict(x, e.artifacts.Model)
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{
		Price:         price,
		KnownLocation: KnownLocation(location, manifest),
	}, nil
}

// Locations returns the recognized locations in manifest order.
func (e *Estimator) Locations() []string {
	return e.artifacts.Manifest.Locations()
}

// NumFeatures returns the model input dimensionality.
func (e *Estimator) NumFeatures() int {
	return e.artifacts.Manifest.Len()
}
