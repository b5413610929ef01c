package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
)

func SetupSitemapRouter(e *echo.Echo) {
	e.GET("/sitemap.xml", handler.GetSitemapHandler().Sitemap)
}
