package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/i18n"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/logger"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
)

type listResponse struct {
	Data  any   `json:"data"`
	Total int32 `json:"total"`
	Page  int32 `json:"page"`
	Limit int32 `json:"limit"`
}

type errorResponse struct {
	Error  string             `json:"error"`
	Field  string             `json:"field,omitempty"`
	Fields []apperr.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"data": data})
}

func writeList(w http.ResponseWriter, data any, total, page, limit int32) {
	writeJSON(w, http.StatusOK, listResponse{Data: data, Total: total, Page: page, Limit: limit})
}

// requestLang picks the response language from Accept-Language. Only the
// bare primary subtag matters to the bundle lookup.
func requestLang(r *http.Request) string {
	lang := r.Header.Get("Accept-Language")
	if lang == "" {
		return "en"
	}
	return lang
}

// writeError maps the error taxonomy onto HTTP statuses. Validation and
// duplicate-key messages are localized for the requested language; anything
// unrecognized is an infrastructure failure for this request.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	lang := requestLang(r)
	translator := i18n.GetTranslator()

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		translator.LocalizeValidation(ve, lang)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: ve.Fields,
		})
		return
	}

	var de *apperr.DuplicateKeyError
	if errors.As(err, &de) {
		msg := translator.Translate("conflict.duplicate", lang, map[string]any{
			"Entity": de.Entity,
			"Field":  de.Field,
		})
		writeJSON(w, http.StatusConflict, errorResponse{Error: msg, Field: de.Field})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: apperr.ErrInvalidCredentials.Error()})
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrResetTokenExpired), errors.Is(err, service.ErrResetTokenUsed),
		errors.Is(err, service.ErrNotRentalProduct):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("Request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
