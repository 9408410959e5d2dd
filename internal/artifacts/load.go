package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type columnsFile struct {
	DataColumns []string `json:"data_columns"`
}

type modelFile struct {
	Coef      []float64 `json:"coef"`
	Intercept *float64  `json:"intercept"`
}

// Load reads the manifest and the model from dir.
func Load(dir string) (*Artifacts, error) {
	var cols columnsFile
	if err := readJSON(filepath.Join(dir, ColumnsFile), &cols); err != nil {
		return nil, err
	}
	if cols.DataColumns == nil {
		return nil, fmt.Errorf("%w: %s: missing data_columns", ErrLoad, ColumnsFile)
	}

	var mf modelFile
	if err := readJSON(filepath.Join(dir, ModelFile), &mf); err != nil {
		return nil, err
	}
	if mf.Intercept == nil {
		return nil, fmt.Errorf("%w: %s: missing intercept", ErrLoad, ModelFile)
	}

	return New(cols.DataColumns, mf.Coef, *mf.Intercept)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoad, filepath.Base(path), err)
	}
	return nil
}

// Loader reads the artifacts from Dir on the first call to Load and hands out
// the cached result afterwards. A failed load is cached too; it is never retried.
type Loader struct {
	Dir string

	once      sync.Once
	artifacts *Artifacts
	err       error
}

// NewLoader creates a loader for the given artifacts directory.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load returns the artifacts, reading them from disk only once.
func (l *Loader) Load() (*Artifacts, error) {
	l.once.Do(func() {
		l.artifacts, l.err = Load(l.Dir)
	})
	return l.artifacts, l.err
}

// Ready reports whether the artifacts are available. It triggers the load if
// nothing has called Load yet.
func (l *Loader) Ready() bool {
	a, err := l.Load()
	return err == nil && a != nil
}
