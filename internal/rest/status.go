package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type StatusHandler struct {
	appName    string
	appVersion string
	store      ModelStore
	cacheStats CacheStatser
}

func NewStatusHandler(appName, appVersion string, store ModelStore, cacheStats CacheStatser) *StatusHandler {
	return &StatusHandler{
		appName:    appName,
		appVersion: appVersion,
		store:      store,
		cacheStats: cacheStats,
	}
}

// GET /
func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":         h.appName,
		"version":      h.appVersion,
		"status":       "running",
		"startup_time": h.store.StartupTime().Format(time.RFC3339),
	})
}

// GET /api/status
func (h *StatusHandler) Status(c echo.Context) error {
	info := h.store.Info()
	stats := h.cacheStats.Stats()

	return c.JSON(http.StatusOK, map[string]any{
		"status":             "running",
		"api_version":        h.appVersion,
		"model_loaded":       h.store.IsLoaded(),
		"users_count":        info.UserCount,
		"courses_count":      info.ItemCount,
		"mine_courses_count": info.MineCount,
		"cache": map[string]any{
			"size":   stats.Size,
			"hits":   stats.Hits,
			"misses": stats.Misses,
		},
		"model_info": info.Metadata,
	})
}
