package handlers

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"delhihomes/internal/config"
	"delhihomes/internal/metrics"
	"delhihomes/internal/models"
	"delhihomes/internal/pricing"
	"delhihomes/internal/validation"
)

// lakh is the number of rupees in one lakh.
const lakh = 100000

// Estimator prices a listing from its four inputs.
type Estimator interface {
	Estimate(location string, sqft, bhk, bath float64) (pricing.Estimate, error)
	Locations() []string
}

// DashboardHandler serves the HTML price predictor.
type DashboardHandler struct {
	estimator Estimator
	cfg       *config.Config
	ui        config.DashboardConfig
	metrics   *metrics.Recorder
	log       *zap.Logger
	printer   *message.Printer
}

// dashboardForm holds the values shown in the form inputs.
type dashboardForm struct {
	Sqft     string
	Bhk      int
	Bath     int
	Location string
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(estimator Estimator, cfg *config.Config, ui config.DashboardConfig, recorder *metrics.Recorder, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		estimator: estimator,
		cfg:       cfg,
		ui:        ui,
		metrics:   recorder,
		log:       logger,
		printer:   message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Index renders the empty prediction form.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	locations := h.sortedLocations()

	form := dashboardForm{
		Sqft: formatNumber(h.ui.Area.Default),
		Bhk:  h.ui.Bhk.Default,
		Bath: h.ui.Bath.Default,
	}
	if len(locations) > 0 {
		form.Location = locations[0]
	}

	return c.Render("index", h.page(locations, form, nil, ""))
}

// Estimate handles the form submission and renders the estimate.
func (h *DashboardHandler) Estimate(c fiber.Ctx) error {
	locations := h.sortedLocations()

	values := url.Values{}
	for _, key := range []string{validation.FieldSqft, validation.FieldLocation, validation.FieldBhk, validation.FieldBath} {
		if v := c.FormValue(key); v != "" {
			values.Set(key, v)
		}
	}
	form := dashboardForm{
		Sqft:     values.Get(validation.FieldSqft),
		Location: values.Get(validation.FieldLocation),
		Bhk:      h.ui.Bhk.Default,
		Bath:     h.ui.Bath.Default,
	}

	fields, err := validation.FormFields(values)
	if err != nil {
		return h.rejectForm(c, locations, form, validation.Message(err))
	}
	req, err := validation.ParsePriceRequest(fields)
	if err != nil {
		return h.rejectForm(c, locations, form, validation.Message(err))
	}
	form.Bhk, form.Bath = req.Bhk, req.Bath

	bounds := validation.Bounds{
		MinSqft:     h.ui.Area.Min,
		MaxSqft:     h.ui.Area.Max,
		BhkOptions:  h.ui.Bhk.Options,
		BathOptions: h.ui.Bath.Options,
	}
	if valid, msg := validation.ValidateDashboardInput(req, bounds, locations); !valid {
		return h.rejectForm(c, locations, form, msg)
	}

	est, err := h.estimator.Estimate(req.Location, req.Sqft, float64(req.Bhk), float64(req.Bath))
	if err != nil {
		h.metrics.Record(metrics.SourceDashboard, metrics.OutcomeError)
		h.log.Error("dashboard prediction failed", zap.String("location", req.Location), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Error predicting price: "+err.Error())
	}
	if est.KnownLocation {
		h.metrics.Record(metrics.SourceDashboard, metrics.OutcomeKnownLocation)
	} else {
		h.metrics.Record(metrics.SourceDashboard, metrics.OutcomeUnknownLocation)
	}

	result := &models.EstimateView{
		Price:        h.printer.Sprintf("%.2f", est.Price),
		Location:     req.Location,
		Sqft:         formatNumber(req.Sqft),
		Bhk:          req.Bhk,
		Bath:         req.Bath,
		PricePerSqft: h.printer.Sprintf("%.2f", pricing.Round2(est.Price*lakh/req.Sqft)),
	}

	return c.Render("index", h.page(locations, form, result, ""))
}

func (h *DashboardHandler) rejectForm(c fiber.Ctx, locations []string, form dashboardForm, msg string) error {
	h.metrics.Record(metrics.SourceDashboard, metrics.OutcomeInvalid)
	return c.Status(fiber.StatusBadRequest).Render("index", h.page(locations, form, nil, msg))
}

func (h *DashboardHandler) page(locations []string, form dashboardForm, result *models.EstimateView, errMsg string) fiber.Map {
	return fiber.Map{
		"Title":     "",
		"SiteTitle": h.cfg.SiteTitle,
		"Tagline":   h.ui.Tagline,
		"About":     h.ui.About,
		"Note":      h.ui.Note,
		"Area":      h.ui.Area,
		"Bhk":       h.ui.Bhk,
		"Bath":      h.ui.Bath,
		"Locations": locations,
		"Form":      form,
		"Result":    result,
		"Error":     errMsg,
	}
}

// sortedLocations returns the locations in alphabetical order for the select box.
func (h *DashboardHandler) sortedLocations() []string {
	locations := h.estimator.Locations()
	slices.Sort(locations)
	return locations
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
