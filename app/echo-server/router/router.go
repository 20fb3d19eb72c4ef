package router

import (
	"msaRecommender/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecoRoutes(api *echo.Group, handler *rest.RecoHandler) {
	api.GET("/recommendations", handler.Recommend)
}

func SetupStatusRoutes(e *echo.Echo, api *echo.Group, handler *rest.StatusHandler) {
	e.GET("/", handler.Root)
	api.GET("/status", handler.Status)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/users", handler.Users)
	api.GET("/courses", handler.Courses)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler) {
	admin := api.Group("/admin")
	admin.GET("/cache", handler.Cache)
}
