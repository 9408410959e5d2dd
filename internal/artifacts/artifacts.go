// Package artifacts loads the static files a trained price model ships with:
// the column manifest and the fitted regression coefficients.
package artifacts

import (
	"fmt"
	"slices"
)

// File names inside the artifacts directory.
const (
	ColumnsFile = "columns.json"
	ModelFile   = "delhi_home_prices_model.json"
)

// Leading feature columns, fixed at training time.
const (
	ColumnSqft = "sqft"
	ColumnBath = "bath"
	ColumnBhk  = "bhk"
)

// NumFeatureColumns is the number of numeric columns ahead of the locations.
const NumFeatureColumns = 3

// Manifest is the ordered list of model input columns. The first three
// entries are sqft, bath and bhk; the rest are lower-case location names.
type Manifest struct {
	columns []string
}

// Len returns the number of columns, which is the model input dimensionality.
func (m Manifest) Len() int {
	return len(m.columns)
}

// Columns returns a copy of all column names in manifest order.
func (m Manifest) Columns() []string {
	return slices.Clone(m.columns)
}

// Locations returns the location columns in manifest order.
func (m Manifest) Locations() []string {
	if len(m.columns) <= NumFeatureColumns {
		return []string{}
	}
	return slices.Clone(m.columns[NumFeatureColumns:])
}

// Index returns the position of an exact column name, or -1.
func (m Manifest) Index(name string) int {
	return slices.Index(m.columns, name)
}

// LinearModel is a fitted linear regression: intercept + coef·x.
type LinearModel struct {
	coef      []float64
	intercept float64
}

// NumFeatures returns the input dimensionality the model was fitted on.
func (lm LinearModel) NumFeatures() int {
	return len(lm.coef)
}

// Predict evaluates the model on a single input vector.
func (lm LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != len(lm.coef) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(lm.coef), len(x))
	}
	y := lm.intercept
	for i, c := range lm.coef {
		y += c * x[i]
	}
	return y, nil
}

// Artifacts is the immutable pair every estimate is computed from.
type Artifacts struct {
	Manifest Manifest
	Model    LinearModel
}

// New validates the given columns and coefficients and returns the handle.
// Inputs are copied, so later changes to the slices are not observed.
func New(columns []string, coef []float64, intercept float64) (*Artifacts, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: model has no coefficients", ErrLoad)
	}
	if len(coef) != len(columns) {
		return nil, fmt.Errorf("%w: model expects %d features but manifest has %d columns",
			ErrLoad, len(coef), len(columns))
	}

	return &Artifacts{
		Manifest: Manifest{columns: slices.Clone(columns)},
		Model:    LinearModel{coef: slices.Clone(coef), intercept: intercept},
	}, nil
}

func checkColumns(columns []string) error {
	want := []string{ColumnSqft, ColumnBath, ColumnBhk}
	if len(columns) < len(want) {
		return fmt.Errorf("%w: manifest has %d columns, need at least %d", ErrLoad, len(columns), len(want))
	}
	for i, name := range want {
		if columns[i] != name {
			return fmt.Errorf("%w: manifest column %d is %q, want %q", ErrLoad, i, columns[i], name)
		}
	}
	return nil
}
