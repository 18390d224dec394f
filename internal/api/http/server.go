// Package http exposes the admin operations as a JSON API. Deletes are
// two-phase: a delete-request returns a confirmation token that must come
// back on the delete-confirm call.
package http

import (
	"github.com/gorilla/mux"

	"ansimaq-erp-backend/internal/service"
)

// Server wires the entity handlers onto a router
type Server struct {
	equipment *EquipmentHandler
	clients   *ClientHandler
	contracts *ContractHandler
	history   *HistoryHandler
	billing   *BillingHandler
	rollups   *RollupHandler
}

func NewServer(
	equipmentSvc service.EquipmentService,
	clientSvc service.ClientService,
	contractSvc service.ContractService,
	historySvc service.HistoryService,
	billingSvc service.BillingService,
	rollupSvc service.RollupService,
) *Server {
	return &Server{
		equipment: NewEquipmentHandler(equipmentSvc),
		clients:   NewClientHandler(clientSvc),
		contracts: NewContractHandler(contractSvc),
		history:   NewHistoryHandler(historySvc),
		billing:   NewBillingHandler(billingSvc),
		rollups:   NewRollupHandler(rollupSvc),
	}
}

// Router builds the API route table
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/equipment", s.equipment.List).Methods("GET")
	api.HandleFunc("/equipment", s.equipment.Create).Methods("POST")
	api.HandleFunc("/equipment/{code}", s.equipment.Get).Methods("GET")
	api.HandleFunc("/equipment/{code}", s.equipment.Update).Methods("PUT")
	api.HandleFunc("/equipment/{code}/delete-request", s.equipment.RequestDelete).Methods("POST")
	api.HandleFunc("/equipment/{code}/delete-confirm", s.equipment.ConfirmDelete).Methods("POST")

	api.HandleFunc("/clients", s.clients.List).Methods("GET")
	api.HandleFunc("/clients", s.clients.Create).Methods("POST")
	api.HandleFunc("/clients/search", s.clients.Search).Methods("GET")
	api.HandleFunc("/clients/{taxID}", s.clients.Get).Methods("GET")
	api.HandleFunc("/clients/{taxID}", s.clients.Update).Methods("PUT")
	api.HandleFunc("/clients/{taxID}/delete-request", s.clients.RequestDelete).Methods("POST")
	api.HandleFunc("/clients/{taxID}/delete-confirm", s.clients.ConfirmDelete).Methods("POST")

	api.HandleFunc("/contracts", s.contracts.List).Methods("GET")
	api.HandleFunc("/contracts", s.contracts.Create).Methods("POST")
	api.HandleFunc("/contracts/{folio}", s.contracts.Get).Methods("GET")
	api.HandleFunc("/contracts/{folio}", s.contracts.Update).Methods("PUT")
	api.HandleFunc("/contracts/{folio}/delete-request", s.contracts.RequestDelete).Methods("POST")
	api.HandleFunc("/contracts/{folio}/delete-confirm", s.contracts.ConfirmDelete).Methods("POST")
	api.HandleFunc("/contracts/{folio}/history", s.history.ListByFolio).Methods("GET")
	api.HandleFunc("/contracts/{folio}/billing", s.billing.ListByFolio).Methods("GET")

	api.HandleFunc("/history", s.history.Create).Methods("POST")
	api.HandleFunc("/history/{id}", s.history.Get).Methods("GET")
	api.HandleFunc("/history/{id}", s.history.Update).Methods("PUT")
	api.HandleFunc("/history/{id}", s.history.Delete).Methods("DELETE")

	api.HandleFunc("/billing", s.billing.CreateInvoice).Methods("POST")
	api.HandleFunc("/billing/{id}", s.billing.Get).Methods("GET")
	api.HandleFunc("/billing/{id}", s.billing.UpdateInvoice).Methods("PUT")
	api.HandleFunc("/billing/{id}/delete-request", s.billing.RequestDelete).Methods("POST")
	api.HandleFunc("/billing/{id}/delete-confirm", s.billing.ConfirmDelete).Methods("POST")

	api.HandleFunc("/rollups/equipment", s.rollups.EquipmentRanking).Methods("GET")
	api.HandleFunc("/rollups/equipment/{code}", s.rollups.EquipmentMonthly).Methods("GET")
	api.HandleFunc("/rollups/contracts/{folio}", s.rollups.ContractSummary).Methods("GET")
	api.HandleFunc("/rollups/clients", s.rollups.ClientRanking).Methods("GET")

	return r
}
