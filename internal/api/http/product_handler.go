package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type ProductHandler struct {
	productSvc service.ProductService
}

func NewProductHandler(productSvc service.ProductService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	category := r.URL.Query().Get("category")
	products, total, err := h.productSvc.List(r.Context(), category, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, products, total, page, limit)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	product, err := h.productSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	product, err := h.productSvc.Create(r.Context(), claims.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var in validation.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	product, err := h.productSvc.Update(r.Context(), claims.UserID, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	claims := claimsFrom(r)
	if err := h.productSvc.Delete(r.Context(), claims.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "product deleted"})
}
