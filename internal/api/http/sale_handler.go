package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type SaleHandler struct {
	saleSvc service.SaleService
}

func NewSaleHandler(saleSvc service.SaleService) *SaleHandler {
	return &SaleHandler{saleSvc: saleSvc}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	paymentStatus := r.URL.Query().Get("payment_status")
	sales, total, err := h.saleSvc.List(r.Context(), paymentStatus, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, sales, total, page, limit)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	sale, err := h.saleSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, sale)
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.SaleInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	sale, err := h.saleSvc.Create(r.Context(), claims.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, sale)
}

func (h *SaleHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var in struct {
		PaymentStatus string `json:"payment_status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	sale, err := h.saleSvc.UpdatePaymentStatus(r.Context(), claims.UserID, id, in.PaymentStatus)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, sale)
}
