// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"delhihomes/internal/artifacts"
	"delhihomes/internal/pricing"
)

// Fixture model shared by handler and server tests. With it,
// 1200 sq ft, 3 BHK, 2 bath in dwarka prices at 96 lakhs and the same
// listing in an unknown location at 71 lakhs.
var (
	Columns   = []string{"sqft", "bath", "bhk", "indirapuram", "dwarka", "sector 150"}
	Coef      = []float64{0.05, 4, 2, 10, 25, -5}
	Intercept = -3.0
)

// NewArtifacts builds the fixture artifacts in memory.
func NewArtifacts(t *testing.T) *artifacts.Artifacts {
	t.Helper()

	a, err := artifacts.New(Columns, Coef, Intercept)
	if err != nil {
		t.Fatalf("failed to build test artifacts: %v", err)
	}
	return a
}

// NewEstimator returns an estimator over the fixture artifacts.
func NewEstimator(t *testing.T) *pricing.Estimator {
	t.Helper()
	return pricing.NewEstimator(NewArtifacts(t))
}

// WriteArtifacts writes the fixture artifacts into a temporary directory and
// returns its path.
func WriteArtifacts(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, artifacts.ColumnsFile), map[string]any{
		"data_columns": Columns,
	})
	writeJSON(t, filepath.Join(dir, artifacts.ModelFile), map[string]any{
		"coef":      Coef,
		"intercept": Intercept,
	})
	return dir
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
