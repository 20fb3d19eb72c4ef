package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	cacheStats CacheStatser
}

func NewAdminHandler(cacheStats CacheStatser) *AdminHandler {
	return &AdminHandler{cacheStats: cacheStats}
}

// GET /api/admin/cache
func (h *AdminHandler) Cache(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.cacheStats.Stats()))
}
