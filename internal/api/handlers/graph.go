package handlers

import (
	"net/http"

	"github.com/doxalab/doxa/internal/service"
	"github.com/doxalab/doxa/internal/viz"
)

type GraphHandler struct {
	svc *service.QueryService
}

func NewGraphHandler(svc *service.QueryService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// Snapshot returns every belief and edge in insertion order.
func (h *GraphHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to snapshot graph")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// DOT returns the graph rendered as Graphviz DOT, suitable for piping
// straight into dot -Tsvg.
func (h *GraphHandler) DOT(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to snapshot graph")
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(viz.RenderDOT(snap)))
}
