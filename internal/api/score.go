package api

import (
	"errors"
	"log/slog"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
	"github.com/MikeSquared-Agency/RentWise/internal/events"
	"github.com/MikeSquared-Agency/RentWise/internal/scoring"
)

type ScoringHandler struct {
	catalog *catalog.Catalog
	events  events.Publisher
	metrics *Metrics
	logger  *slog.Logger
}

func NewScoringHandler(c *catalog.Catalog, p events.Publisher, m *Metrics, logger *slog.Logger) *ScoringHandler {
	return &ScoringHandler{catalog: c, events: p, metrics: m, logger: logger}
}

type ScoreRequest struct {
	Neighborhood string          `json:"neighborhood"`
	Weights      scoring.Weights `json:"weights"`
}

// Score returns the breakdown for one neighborhood. Unlike Compare, an
// unknown name is an error.
// POST /api/v1/score
func (h *ScoringHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Neighborhood == "" {
		writeError(w, http.StatusBadRequest, "neighborhood required")
		return
	}
	weights, err := scoringWeights(req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.catalog.Get(req.Neighborhood)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "neighborhood not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := scoring.Breakdown(n, weights)
	h.metrics.observeScore(n.Name, result.TotalScore)
	writeJSON(w, http.StatusOK, result)
}

type CompareRequest struct {
	Left    string          `json:"left"`
	Right   string          `json:"right"`
	Weights scoring.Weights `json:"weights"`
}

// Compare scores two neighborhoods side by side. Unknown names fall back to
// the first and second catalog entries.
// POST /api/v1/compare
func (h *ScoringHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weights, err := scoringWeights(req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := scoring.CompareByName(h.catalog, req.Left, req.Right, weights)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.metrics.observeScore(c.Left.Neighborhood, c.Left.TotalScore)
	h.metrics.observeScore(c.Right.Neighborhood, c.Right.TotalScore)

	if h.events != nil {
		reqID := chiMiddleware.GetReqID(r.Context())
		if err := h.events.Publish(events.SubjectComparisonScored,
			events.NewComparisonScored(reqID, c, weights)); err != nil {
			h.logger.Warn("failed to publish event", "subject", events.SubjectComparisonScored, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, c)
}

// scoringWeights defaults missing weights to uniform and validates the rest.
func scoringWeights(w scoring.Weights) (scoring.Weights, error) {
	if w == nil {
		return scoring.Uniform(), nil
	}
	if err := checkScoringWeights(w); err != nil {
		return nil, err
	}
	return w, nil
}
