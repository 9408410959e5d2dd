// Package pricing turns the four listing inputs into a model feature vector and
// a price estimate in lakhs.
package pricing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"delhihomes/internal/artifacts"
)

// Positions of the numeric features in every vector.
const (
	SqftIndex = 0
	BathIndex = 1
	BhkIndex  = 2
)

// FeatureVector is one model input row, laid out in manifest order.
type FeatureVector []float64

// NormalizeLocation lowercases a location so it can be compared against the
// manifest, which stores location names in lower case.
func NormalizeLocation(location string) string {
	return cases.Lower(language.Und).String(location)
}

// Encode builds the feature vector for one listing. The location is matched
// case-insensitively against the manifest; an unknown location leaves every
// location indicator at zero instead of failing.
func Encode(location string, sqft, bhk, bath float64, manifest artifacts.Manifest) FeatureVector {
	x := make(FeatureVector, manifest.Len())
	x[SqftIndex] = sqft
	x[BathIndex] = bath
	x[BhkIndex] = bhk

	if i := locationIndex(location, manifest); i >= 0 {
		x[i] = 1
	}
	return x
}

// locationIndex returns the manifest index of the location column, or -1.
// The numeric feature columns never count as a location.
func locationIndex(location string, manifest artifacts.Manifest) int {
	i := manifest.Index(NormalizeLocation(location))
	if i < artifacts.NumFeatureColumns {
		return -1
	}
	return i
}

// KnownLocation reports whether the location has a column in the manifest.
func KnownLocation(location string, manifest artifacts.Manifest) bool {
	return locationIndex(location, manifest) >= 0
}
