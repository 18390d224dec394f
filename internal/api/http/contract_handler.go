package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/service"
)

type ContractHandler struct {
	svc service.ContractService
}

func NewContractHandler(svc service.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

func folioVar(w http.ResponseWriter, r *http.Request) (int64, bool) {
	folio, err := strconv.ParseInt(mux.Vars(r)["folio"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "folio must be numeric"})
		return 0, false
	}
	return folio, true
}

type createContractRequest struct {
	domain.Contract
	DeliveryHourMeter int32 `json:"delivery_hour_meter"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	created, err := h.svc.Create(r.Context(), &req.Contract, req.DeliveryHourMeter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), folio)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	contracts, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	var c domain.Contract
	if !decodeBody(w, r, &c) {
		return
	}
	c.Folio = folio
	if err := h.svc.Update(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ContractHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	token, err := h.svc.RequestDelete(r.Context(), folio)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *ContractHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	folio, ok := folioVar(w, r)
	if !ok {
		return
	}
	var body struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.svc.ConfirmDelete(r.Context(), folio, body.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
