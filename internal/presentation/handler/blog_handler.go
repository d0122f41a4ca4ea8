package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"atelier/internal/application/usecase/abstraction"
	"atelier/internal/domain/dto"
	"atelier/internal/presentation"
	"atelier/internal/presentation/middleware"
)

type BlogHandler struct {
	manager abstraction.BlogManager
	intake  *Intake
}

func NewBlogHandler(manager abstraction.BlogManager, intake *Intake) *BlogHandler {
	return &BlogHandler{
		manager: manager,
		intake:  intake,
	}
}

// HandleCreate handles POST /api/blogs requests.
func (h *BlogHandler) HandleCreate(c echo.Context) error {
	in := dto.CreateBlogInput{
		Title:   c.FormValue("title"),
		Excerpt: c.FormValue("excerpt"),
		Content: c.FormValue("content"),
		Status:  c.FormValue("status"),
	}

	var err error
	if in.Tags, err = formStringArray(c, "tags"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.Categories, err = formStringArray(c, "categories"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	upload, err := h.intake.Receive(c, "featuredImage")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	blog, status, err := h.manager.Create(c.Request().Context(), in, upload, *middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Blog created successfully", nil, "blog", blog))
}

// HandleList handles GET /api/blogs requests.
func (h *BlogHandler) HandleList(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	q := dto.ListBlogsQuery{
		Page:   page,
		Limit:  limit,
		Status: c.QueryParam("status"),
	}

	blogs, pagination, status, err := h.manager.List(c.Request().Context(), q, middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Blogs fetched successfully", nil,
		"blogs", blogs, "pagination", pagination))
}

// HandleGet handles GET /api/blogs/:slug requests.
func (h *BlogHandler) HandleGet(c echo.Context) error {
	blog, status, err := h.manager.GetBySlug(c.Request().Context(),
		c.Param(presentation.SlugParam), middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Blog fetched successfully", nil, "blog", blog))
}

// HandleUpdate handles PUT /api/blogs/:slug requests.
func (h *BlogHandler) HandleUpdate(c echo.Context) error {
	in := dto.UpdateBlogInput{
		Title:   formPtr(c, "title"),
		Slug:    formPtr(c, "slug"),
		Excerpt: formPtr(c, "excerpt"),
		Content: formPtr(c, "content"),
		Status:  formPtr(c, "status"),
	}

	var err error
	if in.Tags, err = formStringArray(c, "tags"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.Categories, err = formStringArray(c, "categories"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.PublishedAt, err = formTime(c, "publishedAt"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	upload, err := h.intake.Receive(c, "featuredImage")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	blog, warnings, status, err := h.manager.Update(c.Request().Context(),
		c.Param(presentation.SlugParam), in, upload)
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Blog updated successfully", warnings, "blog", blog))
}

// HandleDelete handles DELETE /api/blogs/:slug requests.
func (h *BlogHandler) HandleDelete(c echo.Context) error {
	warnings, status, err := h.manager.Delete(c.Request().Context(), c.Param(presentation.SlugParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Blog deleted successfully", warnings))
}
