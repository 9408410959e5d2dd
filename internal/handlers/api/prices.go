package api

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"delhihomes/internal/metrics"
	"delhihomes/internal/models"
	"delhihomes/internal/pricing"
	"delhihomes/internal/validation"
)

// PriceEstimator prices a listing from its four inputs.
type PriceEstimator interface {
	Estimate(location string, sqft, bhk, bath float64) (pricing.Estimate, error)
	Locations() []string
}

// PriceHandler serves the price prediction JSON API.
type PriceHandler struct {
	estimator PriceEstimator
	metrics   *metrics.Recorder
	log       *zap.Logger
}

// NewPriceHandler creates a new API price handler.
func NewPriceHandler(estimator PriceEstimator, recorder *metrics.Recorder, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{estimator: estimator, metrics: recorder, log: logger}
}

// LocationNames returns every recognized location in manifest order.
func (h *PriceHandler) LocationNames(c fiber.Ctx) error {
	return c.JSON(models.LocationsResponse{Locations: h.estimator.Locations()})
}

// Predict estimates the price of one listing. The body may be JSON or a form.
func (h *PriceHandler) Predict(c fiber.Ctx) error {
	fields, err := requestFields(c)
	if err == nil {
		var req validation.PriceRequest
		req, err = validation.ParsePriceRequest(fields)
		if err == nil {
			return h.predict(c, req)
		}
	}

	h.metrics.Record(metrics.SourceAPI, metrics.OutcomeInvalid)
	h.log.Debug("rejected price request", zap.Error(err))
	return jsonError(c, fiber.StatusBadRequest, validation.Message(err))
}

func (h *PriceHandler) predict(c fiber.Ctx, req validation.PriceRequest) error {
	est, err := h.estimator.Estimate(req.Location, req.Sqft, float64(req.Bhk), float64(req.Bath))
	if err != nil {
		h.metrics.Record(metrics.SourceAPI, metrics.OutcomeError)
		h.log.Error("price prediction failed",
			zap.String("location", req.Location),
			zap.Float64("total_sqft", req.Sqft),
			zap.Int("bhk", req.Bhk),
			zap.Int("bath", req.Bath),
			zap.Error(err),
		)
		return jsonError(c, fiber.StatusInternalServerError, "Server error: "+err.Error())
	}

	if est.KnownLocation {
		h.metrics.Record(metrics.SourceAPI, metrics.OutcomeKnownLocation)
	} else {
		h.metrics.Record(metrics.SourceAPI, metrics.OutcomeUnknownLocation)
		h.log.Debug("estimated without location indicator", zap.String("location", req.Location))
	}

	return c.JSON(models.PriceResponse{
		EstimatedPrice: est.Price,
		Currency:       models.Currency,
		Location:       req.Location,
		TotalSqft:      req.Sqft,
		Bhk:            req.Bhk,
		Bath:           req.Bath,
	})
}

// Ping answers the liveness check of API clients.
func Ping(c fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "Server is working!"})
}

// requestFields reads the body as JSON when the client says so and as a
// form otherwise.
func requestFields(c fiber.Ctx) (map[string]any, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.Contains(contentType, "json"):
		return validation.DecodeJSON(c.Body())
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("%w: malformed multipart body", validation.ErrInvalidFormat)
		}
		return validation.FormFields(url.Values(form.Value))
	default:
		values, err := url.ParseQuery(string(c.Body()))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed form body", validation.ErrInvalidFormat)
		}
		return validation.FormFields(values)
	}
}
