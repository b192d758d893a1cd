package handlers

import (
	"errors"
	"net/http"

	"github.com/doxalab/doxa/internal/service"
)

type ReliabilityHandler struct {
	svc *service.ReliabilityService
}

func NewReliabilityHandler(svc *service.ReliabilityService) *ReliabilityHandler {
	return &ReliabilityHandler{svc: svc}
}

// Get scores how settled the graph's knowledge is for an entity/predicate
// pair. 404 means no beliefs were ever recorded for the pair.
func (h *ReliabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	entity := r.URL.Query().Get("entity")
	predicate := r.URL.Query().Get("predicate")

	report, err := h.svc.Compute(r.Context(), predicate, entity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntityEmpty), errors.Is(err, service.ErrPredicateEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to compute reliability")
		}
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "no beliefs for this entity and predicate")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
