package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/service"
)

type RollupHandler struct {
	svc service.RollupService
}

func NewRollupHandler(svc service.RollupService) *RollupHandler {
	return &RollupHandler{svc: svc}
}

func (h *RollupHandler) EquipmentMonthly(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.EquipmentMonthly(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

func (h *RollupHandler) EquipmentRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.svc.EquipmentRanking(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}

func (h *RollupHandler) ContractSummary(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.ContractSummary(r.Context(), folio)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *RollupHandler) ClientRanking(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	ranking, err := h.svc.ClientRanking(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranking)
}
