package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/service"
)

type HistoryHandler struct {
	svc service.HistoryService
}

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func idVar(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be numeric"})
		return 0, false
	}
	return int32(id), true
}

func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.ServiceEntry
	if !decodeBody(w, r, &e) {
		return
	}
	if err := h.svc.Create(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *HistoryHandler) ListByFolio(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListByFolio(r.Context(), folio)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *HistoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	var e domain.ServiceEntry
	if !decodeBody(w, r, &e) {
		return
	}
	e.ID = id
	if err := h.svc.Update(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
