package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	cases := map[string]struct {
		query string
		want  PaginationParams
	}{
		"defaults":        {"", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		"explicit":        {"page=3&limit=10", PaginationParams{Page: 3, PageSize: 10, Offset: 20}},
		"zero page":       {"page=0", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		"negative limit":  {"limit=-5", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		"oversized limit": {"page=2&limit=500", PaginationParams{Page: 2, PageSize: 100, Offset: 100}},
		"garbage input":   {"page=abc&limit=xyz", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, paramsFor(tc.query))
		})
	}
}
