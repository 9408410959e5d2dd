// Package validation parses and checks the listing fields sent by clients
// before they reach the estimator.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Request field names, shared by JSON and form bodies.
const (
	FieldSqft     = "total_sqft"
	FieldLocation = "location"
	FieldBhk      = "bhk"
	FieldBath     = "bath"
)

// Validation error sentinels.
var (
	ErrNoData        = errors.New("no data received")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidFormat = errors.New("invalid data format")
)

// FieldError describes a field whose value could not be converted.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *FieldError) Unwrap() error {
	return ErrInvalidFormat
}

// PriceRequest holds the validated inputs of one estimate.
type PriceRequest struct {
	Sqft     float64
	Location string
	Bhk      int
	Bath     int
}

// DecodeJSON decodes a JSON object body into a field map. Numbers are kept as
// json.Number so integers and decimals can be told apart later.
func DecodeJSON(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoData
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body", ErrInvalidFormat)
	}
	if v == nil {
		return nil, ErrNoData
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidFormat)
	}
	if len(fields) == 0 {
		return nil, ErrNoData
	}
	return fields, nil
}

// FormFields converts form values into a field map, keeping the first value
// of every key that is present.
func FormFields(values url.Values) (map[string]any, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	fields := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields, nil
}

// ParsePriceRequest reads the four listing fields. Absent and null fields are
// reported as ErrMissingFields; values that cannot be converted produce a
// *FieldError. Decimal bhk or bath numbers are truncated toward zero.
func ParsePriceRequest(fields map[string]any) (PriceRequest, error) {
	if len(fields) == 0 {
		return PriceRequest{}, ErrNoData
	}
	for _, key := range []string{FieldSqft, FieldLocation, FieldBhk, FieldBath} {
		if v, ok := fields[key]; !ok || v == nil {
			return PriceRequest{}, ErrMissingFields
		}
	}

	var req PriceRequest
	var err error

	if req.Sqft, err = parseFloat(FieldSqft, fields[FieldSqft]); err != nil {
		return PriceRequest{}, err
	}
	if req.Bhk, err = parseInt(FieldBhk, fields[FieldBhk]); err != nil {
		return PriceRequest{}, err
	}
	if req.Bath, err = parseInt(FieldBath, fields[FieldBath]); err != nil {
		return PriceRequest{}, err
	}

	location, ok := fields[FieldLocation].(string)
	if !ok {
		return PriceRequest{}, &FieldError{Field: FieldLocation, Reason: "must be a string"}
	}
	req.Location = location

	return req, nil
}

func parseFloat(field string, v any) (float64, error) {
	var f float64
	switch val := v.(type) {
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return 0, &FieldError{Field: field, Reason: fmt.Sprintf("%q is not a number", val.String())}
		}
		f = n
	case float64:
		f = val
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, &FieldError{Field: field, Reason: fmt.Sprintf("%q is not a number", val)}
		}
		f = n
	default:
		return 0, &FieldError{Field: field, Reason: "must be a number"}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Field: field, Reason: "must be a finite number"}
	}
	return f, nil
}

func parseInt(field string, v any) (int, error) {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return checkIntRange(field, float64(n))
		}
		f, err := val.Float64()
		if err != nil {
			return 0, &FieldError{Field: field, Reason: fmt.Sprintf("%q is not a number", val.String())}
		}
		return checkIntRange(field, math.Trunc(f))
	case float64:
		return checkIntRange(field, math.Trunc(val))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, &FieldError{Field: field, Reason: fmt.Sprintf("%q is not an integer", val)}
		}
		return checkIntRange(field, float64(n))
	default:
		return 0, &FieldError{Field: field, Reason: "must be an integer"}
	}
}

func checkIntRange(field string, f float64) (int, error) {
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, &FieldError{Field: field, Reason: "out of range"}
	}
	return int(f), nil
}

// Message returns the text shown to a client for a validation error.
func Message(err error) string {
	var fe *FieldError
	switch {
	case errors.Is(err, ErrNoData):
		return "No data received"
	case errors.Is(err, ErrMissingFields):
		return "Missing required fields"
	case errors.As(err, &fe):
		return "Invalid data format: " + fe.Error()
	case errors.Is(err, ErrInvalidFormat):
		return "Invalid data format: " + strings.TrimPrefix(err.Error(), ErrInvalidFormat.Error()+": ")
	default:
		return err.Error()
	}
}

// Bounds are the limits the dashboard form enforces.
type Bounds struct {
	MinSqft     float64
	MaxSqft     float64
	BhkOptions  []int
	BathOptions []int
}

// ValidateDashboardInput checks a parsed request against the dashboard form
// limits. It returns a user-facing message, empty when the input is valid.
func ValidateDashboardInput(req PriceRequest, b Bounds, locations []string) (bool, string) {
	if req.Sqft < b.MinSqft || req.Sqft > b.MaxSqft {
		return false, fmt.Sprintf("Area must be between %g and %g square feet", b.MinSqft, b.MaxSqft)
	}
	if len(b.BhkOptions) > 0 && !slices.Contains(b.BhkOptions, req.Bhk) {
		return false, "Please select a valid BHK option"
	}
	if len(b.BathOptions) > 0 && !slices.Contains(b.BathOptions, req.Bath) {
		return false, "Please select a valid number of bathrooms"
	}
	if !slices.Contains(locations, req.Location) {
		return false, "Please select a location from the list"
	}
	return true, ""
}
