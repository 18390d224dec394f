package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/domain"
	"ansimaq-erp-backend/internal/service"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(svc service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !decodeBody(w, r, &c) {
		return
	}
	if err := h.svc.Create(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), mux.Vars(r)["taxID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !decodeBody(w, r, &c) {
		return
	}
	if err := h.svc.Update(r.Context(), mux.Vars(r)["taxID"], &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	token, err := h.svc.RequestDelete(r.Context(), mux.Vars(r)["taxID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *ClientHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.svc.ConfirmDelete(r.Context(), mux.Vars(r)["taxID"], body.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
