package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/domain/entity"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"
)

// ContentHandler serves the marketing-page collections: services, skills,
// education, projects and testimonials. Reads are public; writes are mounted
// behind the admin gate.
type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
	}
}

func (h *ContentHandler) ListServices(c echo.Context) error {
	items, err := h.contentUseCase.ListServices(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *ContentHandler) SaveService(c echo.Context) error {
	var item entity.ServiceItem
	if err := c.Bind(&item); err != nil {
		return response.Error(c, err)
	}
	if err := h.contentUseCase.SaveService(c.Request().Context(), &item); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.contentUseCase.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ContentHandler) ListSkills(c echo.Context) error {
	skills, err := h.contentUseCase.ListSkills(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, skills)
}

func (h *ContentHandler) SaveSkill(c echo.Context) error {
	var skill entity.Skill
	if err := c.Bind(&skill); err != nil {
		return response.Error(c, err)
	}
	if err := h.contentUseCase.SaveSkill(c.Request().Context(), &skill); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, skill)
}

func (h *ContentHandler) DeleteSkill(c echo.Context) error {
	if err := h.contentUseCase.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ContentHandler) ListEducation(c echo.Context) error {
	entries, err := h.contentUseCase.ListEducation(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *ContentHandler) SaveEducation(c echo.Context) error {
	var edu entity.Education
	if err := c.Bind(&edu); err != nil {
		return response.Error(c, err)
	}
	if err := h.contentUseCase.SaveEducation(c.Request().Context(), &edu); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, edu)
}

func (h *ContentHandler) DeleteEducation(c echo.Context) error {
	if err := h.contentUseCase.DeleteEducation(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ContentHandler) ListProjects(c echo.Context) error {
	featuredOnly := c.QueryParam("featured") == "true"

	projects, err := h.contentUseCase.ListProjects(c.Request().Context(), featuredOnly)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, projects)
}

func (h *ContentHandler) SaveProject(c echo.Context) error {
	var project entity.Project
	if err := c.Bind(&project); err != nil {
		return response.Error(c, err)
	}
	if err := h.contentUseCase.SaveProject(c.Request().Context(), &project); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, project)
}

func (h *ContentHandler) DeleteProject(c echo.Context) error {
	if err := h.contentUseCase.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

// ListTestimonials serves approved quotes publicly; the unfiltered view is
// the admin variant.
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.contentUseCase.ListTestimonials(c.Request().Context(), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, testimonials)
}

func (h *ContentHandler) ListAllTestimonials(c echo.Context) error {
	testimonials, err := h.contentUseCase.ListTestimonials(c.Request().Context(), false)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, testimonials)
}

func (h *ContentHandler) SaveTestimonial(c echo.Context) error {
	var t entity.Testimonial
	if err := c.Bind(&t); err != nil {
		return response.Error(c, err)
	}
	if err := h.contentUseCase.SaveTestimonial(c.Request().Context(), &t); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, t)
}

func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.contentUseCase.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
