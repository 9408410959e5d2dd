package validation

import (
	"errors"
	"net/url"
	"testing"
)

func TestParsePriceRequestJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want PriceRequest
	}{
		{
			name: "numbers",
			body: `{"total_sqft": 1200, "location": "Dwarka", "bhk": 3, "bath": 2}`,
			want: PriceRequest{Sqft: 1200, Location: "Dwarka", Bhk: 3, Bath: 2},
		},
		{
			name: "numeric strings",
			body: `{"total_sqft": " 1450.5 ", "location": "indirapuram", "bhk": "2", "bath": " 1"}`,
			want: PriceRequest{Sqft: 1450.5, Location: "indirapuram", Bhk: 2, Bath: 1},
		},
		{
			name: "decimal counts truncate",
			body: `{"total_sqft": 900, "location": "rohini", "bhk": 2.9, "bath": 1.0}`,
			want: PriceRequest{Sqft: 900, Location: "rohini", Bhk: 2, Bath: 1},
		},
		{
			name: "extra fields ignored",
			body: `{"total_sqft": 500, "location": "", "bhk": 1, "bath": 1, "floor": 3}`,
			want: PriceRequest{Sqft: 500, Location: "", Bhk: 1, Bath: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := DecodeJSON([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}
			got, err := ParsePriceRequest(fields)
			if err != nil {
				t.Fatalf("ParsePriceRequest() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePriceRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePriceRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{"empty body", ``, ErrNoData, "No data received"},
		{"null body", `null`, ErrNoData, "No data received"},
		{"empty object", `{}`, ErrNoData, "No data received"},
		{"not json", `total_sqft=1200`, ErrInvalidFormat, "Invalid data format: malformed JSON body"},
		{"array body", `[1, 2, 3]`, ErrInvalidFormat, "Invalid data format: body must be a JSON object"},
		{"missing bath", `{"total_sqft": 1200, "location": "dwarka", "bhk": 3}`, ErrMissingFields, "Missing required fields"},
		{"null location", `{"total_sqft": 1200, "location": null, "bhk": 3, "bath": 2}`, ErrMissingFields, "Missing required fields"},
		{"sqft not numeric", `{"total_sqft": "big", "location": "dwarka", "bhk": 3, "bath": 2}`, ErrInvalidFormat, `Invalid data format: total_sqft: "big" is not a number`},
		{"sqft not finite", `{"total_sqft": "inf", "location": "dwarka", "bhk": 3, "bath": 2}`, ErrInvalidFormat, "Invalid data format: total_sqft: must be a finite number"},
		{"bhk decimal string", `{"total_sqft": 1200, "location": "dwarka", "bhk": "2.5", "bath": 2}`, ErrInvalidFormat, `Invalid data format: bhk: "2.5" is not an integer`},
		{"bath bool", `{"total_sqft": 1200, "location": "dwarka", "bhk": 3, "bath": true}`, ErrInvalidFormat, "Invalid data format: bath: must be an integer"},
		{"bhk huge", `{"total_sqft": 1200, "location": "dwarka", "bhk": 1e300, "bath": 2}`, ErrInvalidFormat, "Invalid data format: bhk: out of range"},
		{"location number", `{"total_sqft": 1200, "location": 7, "bhk": 3, "bath": 2}`, ErrInvalidFormat, "Invalid data format: location: must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := DecodeJSON([]byte(tt.body))
			if err == nil {
				_, err = ParsePriceRequest(fields)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got := Message(err); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestParsePriceRequestForm(t *testing.T) {
	values := url.Values{
		FieldSqft:     {"1000"},
		FieldLocation: {"Greater Noida West"},
		FieldBhk:      {"2"},
		FieldBath:     {"2", "3"},
	}

	fields, err := FormFields(values)
	if err != nil {
		t.Fatalf("FormFields() error = %v", err)
	}
	got, err := ParsePriceRequest(fields)
	if err != nil {
		t.Fatalf("ParsePriceRequest() error = %v", err)
	}
	want := PriceRequest{Sqft: 1000, Location: "Greater Noida West", Bhk: 2, Bath: 2}
	if got != want {
		t.Errorf("ParsePriceRequest() = %+v, want %+v", got, want)
	}

	if _, err := FormFields(url.Values{}); !errors.Is(err, ErrNoData) {
		t.Errorf("FormFields(empty) error = %v, want ErrNoData", err)
	}

	delete(values, FieldBhk)
	fields, _ = FormFields(values)
	if _, err := ParsePriceRequest(fields); !errors.Is(err, ErrMissingFields) {
		t.Errorf("ParsePriceRequest(no bhk) error = %v, want ErrMissingFields", err)
	}
}

func TestValidateDashboardInput(t *testing.T) {
	bounds := Bounds{
		MinSqft:     100,
		MaxSqft:     10000,
		BhkOptions:  []int{1, 2, 3, 4, 5},
		BathOptions: []int{1, 2, 3, 4, 5},
	}
	locations := []string{"dwarka", "indirapuram"}

	tests := []struct {
		name  string
		req   PriceRequest
		valid bool
	}{
		{"valid", PriceRequest{Sqft: 1000, Location: "dwarka", Bhk: 2, Bath: 2}, true},
		{"lower bound", PriceRequest{Sqft: 100, Location: "dwarka", Bhk: 1, Bath: 1}, true},
		{"area too small", PriceRequest{Sqft: 99, Location: "dwarka", Bhk: 2, Bath: 2}, false},
		{"area too large", PriceRequest{Sqft: 10001, Location: "dwarka", Bhk: 2, Bath: 2}, false},
		{"bhk not offered", PriceRequest{Sqft: 1000, Location: "dwarka", Bhk: 6, Bath: 2}, false},
		{"bath not offered", PriceRequest{Sqft: 1000, Location: "dwarka", Bhk: 2, Bath: 0}, false},
		{"unknown location", PriceRequest{Sqft: 1000, Location: "rohini", Bhk: 2, Bath: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateDashboardInput(tt.req, bounds, locations)
			if valid != tt.valid {
				t.Errorf("ValidateDashboardInput() = %v (%q), want %v", valid, msg, tt.valid)
			}
			if valid && msg != "" {
				t.Errorf("valid input returned message %q", msg)
			}
			if !valid && msg == "" {
				t.Error("invalid input returned no message")
			}
		})
	}
}
