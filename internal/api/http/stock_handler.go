package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type StockHandler struct {
	stockSvc service.BuyStockService
}

func NewStockHandler(stockSvc service.BuyStockService) *StockHandler {
	return &StockHandler{stockSvc: stockSvc}
}

func (h *StockHandler) GetByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(mux.Vars(r)["productId"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	stock, err := h.stockSvc.GetByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, stock)
}

func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(mux.Vars(r)["productId"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	var in validation.StockAdjustmentInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	stock, err := h.stockSvc.Adjust(r.Context(), claims.UserID, productID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, stock)
}

func (h *StockHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	stocks, total, err := h.stockSvc.ListLowStock(r.Context(), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, stocks, total, page, limit)
}
