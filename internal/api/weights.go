package api

import (
	"fmt"
	"log/slog"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
	"github.com/MikeSquared-Agency/RentWise/internal/events"
	"github.com/MikeSquared-Agency/RentWise/internal/scoring"
)

type WeightsHandler struct {
	events      events.Publisher
	metrics     *Metrics
	driverCount int
	logger      *slog.Logger
}

func NewWeightsHandler(p events.Publisher, m *Metrics, driverCount int, logger *slog.Logger) *WeightsHandler {
	return &WeightsHandler{events: p, metrics: m, driverCount: driverCount, logger: logger}
}

type WeightsRequest struct {
	Weights scoring.Weights `json:"weights"`
}

type WeightsResponse struct {
	Weights    scoring.Weights  `json:"weights"`
	TopDrivers []scoring.Driver `json:"top_drivers"`
}

func (h *WeightsHandler) respond(w http.ResponseWriter, weights scoring.Weights) {
	writeJSON(w, http.StatusOK, WeightsResponse{
		Weights:    weights,
		TopDrivers: scoring.TopDrivers(weights, h.driverCount),
	})
}

// checkDimensions rejects weight keys outside the dimension set.
func checkDimensions(w scoring.Weights) error {
	for d := range w {
		if !d.Valid() {
			return fmt.Errorf("unknown dimension %q", d)
		}
	}
	return nil
}

// checkScoringWeights additionally rejects negative weights, which would let
// scores leave the 0-100 range.
func checkScoringWeights(w scoring.Weights) error {
	if err := checkDimensions(w); err != nil {
		return err
	}
	for d, v := range w {
		if v < 0 {
			return fmt.Errorf("negative weight for %s", d)
		}
	}
	return nil
}

// Default returns the uniform reset vector.
// GET /api/v1/weights/default
func (h *WeightsHandler) Default(w http.ResponseWriter, r *http.Request) {
	h.respond(w, scoring.Uniform())
}

// Normalize rescales a draft to sum to 100.
// POST /api/v1/weights/normalize
func (h *WeightsHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req WeightsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkDimensions(req.Weights); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, scoring.Normalize(req.Weights))
}

type RecommendResponse struct {
	Weights    scoring.Weights  `json:"weights"`
	Draft      scoring.Weights  `json:"draft"`
	Rules      []string         `json:"rules"`
	TopDrivers []scoring.Driver `json:"top_drivers"`
}

// Recommend derives weights from onboarding answers. Fields omitted from the
// body keep the questionnaire defaults.
// POST /api/v1/weights/recommend
func (h *WeightsHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	answers := scoring.DefaultAnswers()
	if err := decodeJSON(r, &answers); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := answers.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	weights := scoring.Recommend(answers)
	rules := scoring.Explain(answers)
	if rules == nil {
		rules = []string{}
	}
	if h.metrics != nil {
		h.metrics.Recommendations.WithLabelValues(string(answers.ProfileType)).Inc()
	}
	h.logger.Debug("weights recommended", "profile_type", answers.ProfileType, "rules", rules)

	if h.events != nil {
		reqID := chiMiddleware.GetReqID(r.Context())
		if err := h.events.Publish(events.SubjectWeightsRecommended,
			events.NewWeightsRecommended(reqID, answers, weights, rules)); err != nil {
			h.logger.Warn("failed to publish event", "subject", events.SubjectWeightsRecommended, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, RecommendResponse{
		Weights:    weights,
		Draft:      scoring.Draft(answers),
		Rules:      rules,
		TopDrivers: scoring.TopDrivers(weights, h.driverCount),
	})
}

type AdjustRequest struct {
	Weights   scoring.Weights   `json:"weights"`
	Dimension catalog.Dimension `json:"dimension"`
	Value     int               `json:"value"`
}

// Adjust moves one slider and renormalizes. Without weights the uniform
// vector is the starting point.
// POST /api/v1/weights/adjust
func (h *WeightsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Weights == nil {
		req.Weights = scoring.Uniform()
	}
	if err := checkDimensions(req.Weights); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	adjusted, err := scoring.Adjust(req.Weights, req.Dimension, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.events != nil {
		reqID := chiMiddleware.GetReqID(r.Context())
		if err := h.events.Publish(events.SubjectWeightsAdjusted,
			events.NewWeightsAdjusted(reqID, string(req.Dimension), req.Value, adjusted)); err != nil {
			h.logger.Warn("failed to publish event", "subject", events.SubjectWeightsAdjusted, "error", err)
		}
	}
	h.respond(w, adjusted)
}

type DriversRequest struct {
	Weights scoring.Weights `json:"weights"`
	Count   int             `json:"count,omitempty"`
}

// Drivers lists the heaviest dimensions.
// POST /api/v1/drivers
func (h *WeightsHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	var req DriversRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkScoringWeights(req.Weights); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	count := req.Count
	if count == 0 {
		count = h.driverCount
	}
	drivers := scoring.TopDrivers(req.Weights, count)
	labels := make([]string, len(drivers))
	for i, d := range drivers {
		labels[i] = d.String()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"drivers": drivers,
		"labels":  labels,
	})
}
