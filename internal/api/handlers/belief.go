package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doxalab/doxa/internal/domain"
	"github.com/doxalab/doxa/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BeliefHandler struct {
	svc *service.BeliefService
}

func NewBeliefHandler(svc *service.BeliefService) *BeliefHandler {
	return &BeliefHandler{svc: svc}
}

type createBeliefRequest struct {
	ID         string       `json:"id,omitempty"`
	Entity     string       `json:"entity"`
	Predicate  string       `json:"predicate"`
	Value      domain.Value `json:"value"`
	Confidence *float64     `json:"confidence,omitempty"`
	Source     string       `json:"source,omitempty"`
	AutoCheck  *bool        `json:"auto_check,omitempty"`
}

func (h *BeliefHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBeliefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		req.ID = "belief_" + uuid.NewString()
	}

	// Omitted confidence means full confidence.
	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	in := domain.BeliefInput{
		ID:         req.ID,
		Entity:     req.Entity,
		Predicate:  req.Predicate,
		Value:      req.Value,
		Confidence: confidence,
		Source:     req.Source,
		SkipCheck:  req.AutoCheck != nil && !*req.AutoCheck,
	}

	belief, err := h.svc.AddBelief(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntityEmpty),
			errors.Is(err, service.ErrPredicateEmpty),
			errors.Is(err, service.ErrValueMissing),
			errors.Is(err, service.ErrConfidenceRange),
			errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBeliefExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to add belief")
		}
		return
	}

	writeJSON(w, http.StatusCreated, belief)
}

func (h *BeliefHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	belief, err := h.svc.ArchiveBelief(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBeliefIDEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBeliefNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to archive belief")
		}
		return
	}

	writeJSON(w, http.StatusOK, belief)
}
