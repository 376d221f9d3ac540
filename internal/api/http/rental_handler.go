package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := r.URL.Query().Get("status")
	rentals, total, err := h.rentalSvc.List(r.Context(), status, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, rentals, total, page, limit)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentalSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, rental)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.RentalInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	rental, err := h.rentalSvc.Create(r.Context(), claims.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, rental)
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	rental, err := h.rentalSvc.UpdateStatus(r.Context(), claims.UserID, id, in.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, rental)
}
