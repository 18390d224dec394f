package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/service"
)

type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if !decodeBody(w, r, &e) {
		return
	}
	if err := h.svc.Create(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if !decodeBody(w, r, &e) {
		return
	}
	if err := h.svc.Update(r.Context(), mux.Vars(r)["code"], &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EquipmentHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.RequestDelete(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *EquipmentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.svc.ConfirmDelete(r.Context(), mux.Vars(r)["code"], body.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
