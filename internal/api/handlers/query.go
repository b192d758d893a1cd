package handlers

import (
	"errors"
	"net/http"

	"github.com/doxalab/doxa/internal/service"
)

type QueryHandler struct {
	svc *service.QueryService
}

func NewQueryHandler(svc *service.QueryService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// Ask answers "what does the graph currently believe" for an
// entity/predicate pair: the highest-confidence active belief, or 404 if
// no active belief exists.
func (h *QueryHandler) Ask(w http.ResponseWriter, r *http.Request) {
	entity := r.URL.Query().Get("entity")
	predicate := r.URL.Query().Get("predicate")

	belief, err := h.svc.Ask(r.Context(), predicate, entity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntityEmpty), errors.Is(err, service.ErrPredicateEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to query beliefs")
		}
		return
	}
	if belief == nil {
		writeError(w, http.StatusNotFound, "no active belief for this entity and predicate")
		return
	}

	writeJSON(w, http.StatusOK, belief)
}
