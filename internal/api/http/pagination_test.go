package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int32
		wantLimit int32
	}{
		{"Defaults", "", 1, 20},
		{"Explicit", "page=3&limit=50", 3, 50},
		{"ZeroPage", "page=0", 1, 20},
		{"NegativePage", "page=-2", 1, 20},
		{"ZeroLimit", "limit=0", 1, 20},
		{"LimitClampedToMax", "limit=500", 1, 100},
		{"Garbage", "page=abc&limit=xyz", 1, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/products?"+tc.query, nil)
			page, limit := parsePagination(r)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestPathID(t *testing.T) {
	id, ok := pathID("42")
	assert.True(t, ok)
	assert.Equal(t, int32(42), id)

	for _, raw := range []string{"", "abc", "0", "-1", "1.5"} {
		_, ok := pathID(raw)
		assert.False(t, ok, raw)
	}
}
