package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/doxalab/doxa/internal/service"
)

type EdgeHandler struct {
	svc *service.BeliefService
}

func NewEdgeHandler(svc *service.BeliefService) *EdgeHandler {
	return &EdgeHandler{svc: svc}
}

type createEdgeRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type createEdgeResponse struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// Create links an existing belief as support for another. Only support
// edges can be created over the wire; contradiction edges are recorded by
// the engine itself.
func (h *EdgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.AddSupportEdge(r.Context(), req.Source, req.Target); err != nil {
		switch {
		case errors.Is(err, service.ErrBeliefIDEmpty):
			writeError(w, http.StatusBadRequest, "source and target are required")
		case errors.Is(err, service.ErrBeliefNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to add edge")
		}
		return
	}

	writeJSON(w, http.StatusCreated, createEdgeResponse{
		Source:   req.Source,
		Target:   req.Target,
		Relation: "supports",
	})
}
