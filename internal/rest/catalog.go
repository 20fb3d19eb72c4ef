package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	store ModelStore
}

func NewCatalogHandler(store ModelStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// GET /api/users?limit=100&offset=0
func (h *CatalogHandler) Users(c echo.Context) error {
	if !h.store.IsLoaded() {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Error: "model is not loaded"})
	}

	limit := intQueryParam(c, "limit", 100)
	offset := intQueryParam(c, "offset", 0)

	users := h.store.Users()
	total := len(users)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit < 0 || end > total {
		end = total
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":  total,
		"offset": offset,
		"limit":  limit,
		"users":  users[offset:end],
	})
}

// GET /api/courses?source=mine&limit=100
func (h *CatalogHandler) Courses(c echo.Context) error {
	if !h.store.IsLoaded() {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Error: "model is not loaded"})
	}

	source := c.QueryParam("source")
	limit := intQueryParam(c, "limit", 100)

	courses := h.store.Courses(source)
	total := len(courses)
	if limit >= 0 && limit < total {
		courses = courses[:limit]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total":   total,
		"source":  source,
		"limit":   limit,
		"courses": courses,
	})
}

func intQueryParam(c echo.Context, name string, defaultVal int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return n
}
