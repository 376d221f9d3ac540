package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/validation"
)

type RentalAssetHandler struct {
	assetSvc service.RentalAssetService
}

func NewRentalAssetHandler(assetSvc service.RentalAssetService) *RentalAssetHandler {
	return &RentalAssetHandler{assetSvc: assetSvc}
}

func (h *RentalAssetHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(mux.Vars(r)["productId"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return
	}
	page, limit := parsePagination(r)
	assets, total, err := h.assetSvc.ListByProduct(r.Context(), productID, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, assets, total, page, limit)
}

func (h *RentalAssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	asset, err := h.assetSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, asset)
}

func (h *RentalAssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.RentalAssetInput
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	asset, err := h.assetSvc.Create(r.Context(), claims.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, asset)
}

func (h *RentalAssetHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var in struct {
		Status          string `json:"status"`
		CurrentRentalID *int32 `json:"current_rental_id"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	claims := claimsFrom(r)
	asset, err := h.assetSvc.UpdateStatus(r.Context(), claims.UserID, id, in.Status, in.CurrentRentalID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, asset)
}
