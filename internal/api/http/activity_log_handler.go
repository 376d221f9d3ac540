package http

import (
	"net/http"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/service"
)

type ActivityLogHandler struct {
	logSvc service.ActivityLogService
}

func NewActivityLogHandler(logSvc service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{logSvc: logSvc}
}

func (h *ActivityLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	entityType := r.URL.Query().Get("entity_type")
	logs, total, err := h.logSvc.List(r.Context(), entityType, page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, logs, total, page, limit)
}
