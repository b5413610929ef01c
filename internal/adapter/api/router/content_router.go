package router

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"
)

func SetupContentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	contentHandler := handler.GetContentHandler()

	e.GET("/v1/services", contentHandler.ListServices)
	e.GET("/v1/skills", contentHandler.ListSkills)
	e.GET("/v1/education", contentHandler.ListEducation)
	e.GET("/v1/projects", contentHandler.ListProjects)
	e.GET("/v1/testimonials", contentHandler.ListTestimonials)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.POST("/services", contentHandler.SaveService)
	admin.DELETE("/services/:id", contentHandler.DeleteService)

	admin.POST("/skills", contentHandler.SaveSkill)
	admin.DELETE("/skills/:id", contentHandler.DeleteSkill)

	admin.POST("/education", contentHandler.SaveEducation)
	admin.DELETE("/education/:id", contentHandler.DeleteEducation)

	admin.POST("/projects", contentHandler.SaveProject)
	admin.DELETE("/projects/:id", contentHandler.DeleteProject)

	admin.GET("/testimonials", contentHandler.ListAllTestimonials)
	admin.POST("/testimonials", contentHandler.SaveTestimonial)
	admin.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial)
}
