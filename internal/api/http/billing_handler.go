package http

import (
	"net/http"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/service"
)

type BillingHandler struct {
	svc service.BillingService
}

func NewBillingHandler(svc service.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var b domain.BillingRecord
	if !decodeBody(w, r, &b) {
		return
	}
	if err := h.svc.CreateInvoice(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BillingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BillingHandler) ListByFolio(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	records, err := h.svc.ListByFolio(r.Context(), folio)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *BillingHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	var b domain.BillingRecord
	if !decodeBody(w, r, &b) {
		return
	}
	b.ID = id
	if err := h.svc.UpdateInvoice(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BillingHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	token, err := h.svc.RequestDelete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *BillingHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(w, r)
	if !ok {
		return
	}
	var body struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.svc.ConfirmDelete(r.Context(), id, body.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
