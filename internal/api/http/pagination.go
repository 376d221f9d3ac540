package http

import (
	"net/http"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// parsePagination reads page and limit from the query string and clamps
// them: page >= 1, limit in [1, 100], defaulting to 1 and 20.
func parsePagination(r *http.Request) (page, limit int32) {
	page = defaultPage
	limit = defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			page = int32(v)
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			if v > maxLimit {
				v = maxLimit
			}
			limit = int32(v)
		}
	}
	return page, limit
}

// pathID parses a numeric path variable.
func pathID(raw string) (int32, bool) {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int32(v), true
}
