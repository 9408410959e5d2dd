package models

// Currency is the unit every estimate is reported in.
const Currency = "lakhs"

// LocationsResponse lists the locations the model recognizes.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}

// PriceResponse is the result of POST /predict_home_price.
type PriceResponse struct {
	EstimatedPrice float64 `json:"estimated_price"`
	Currency       string  `json:"currency"`
	Location       string  `json:"location"`
	TotalSqft      float64 `json:"total_sqft"`
	Bhk            int     `json:"bhk"`
	Bath           int     `json:"bath"`
}

// MessageResponse is a fixed acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// EstimateView is the dashboard rendering of one estimate.
type EstimateView struct {
	Price        string
	Location     string
	Sqft         string
	Bhk          int
	Bath         int
	PricePerSqft string
}
