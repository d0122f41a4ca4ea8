package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"atelier/internal/application/usecase/abstraction"
	"atelier/internal/domain/dto"
	"atelier/internal/presentation"
	"atelier/internal/presentation/middleware"
)

const (
	coverImageField   = "coverImage"
	galleryFilesField = "images"
)

type PortfolioHandler struct {
	manager abstraction.PortfolioManager
	intake  *Intake
}

func NewPortfolioHandler(manager abstraction.PortfolioManager, intake *Intake) *PortfolioHandler {
	return &PortfolioHandler{
		manager: manager,
		intake:  intake,
	}
}

// HandleCreate handles POST /api/portfolios requests.
func (h *PortfolioHandler) HandleCreate(c echo.Context) error {
	in := dto.CreatePortfolioInput{
		Title:       c.FormValue("title"),
		Slug:        c.FormValue("slug"),
		Description: c.FormValue("description"),
		ProjectType: c.FormValue("projectType"),
		ClientName:  c.FormValue("clientName"),
		Location:    c.FormValue("location"),
		Status:      c.FormValue("status"),
	}

	var err error
	if in.Styles, err = formStringArray(c, "styles"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.Rooms, err = formStringArray(c, "rooms"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.GalleryTitles, err = formStringArray(c, "galleryTitles"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.GalleryDescriptions, err = formStringArray(c, "galleryDescriptions"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.ProjectDate, err = formTime(c, "projectDate"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cover, err := h.intake.Receive(c, coverImageField)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	gallery, err := h.intake.ReceiveAll(c, galleryFilesField)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	portfolio, status, err := h.manager.Create(c.Request().Context(), in, cover, gallery,
		*middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Portfolio project created successfully", nil, "portfolio", portfolio))
}

// HandleList handles GET /api/portfolios requests.
func (h *PortfolioHandler) HandleList(c echo.Context) error {
	q := dto.ListPortfoliosQuery{Status: c.QueryParam("status")}

	portfolios, status, err := h.manager.List(c.Request().Context(), q, middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Portfolio fetched successfully", nil, "portfolio", portfolios))
}

// HandleGet handles GET /api/portfolios/:slug requests.
func (h *PortfolioHandler) HandleGet(c echo.Context) error {
	portfolio, status, err := h.manager.GetBySlug(c.Request().Context(),
		c.Param(presentation.SlugParam), middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Portfolio fetched successfully", nil, "portfolio", portfolio))
}

// HandleUpdate handles PUT /api/portfolios/:slug requests.
func (h *PortfolioHandler) HandleUpdate(c echo.Context) error {
	in := dto.UpdatePortfolioInput{
		Title:       formPtr(c, "title"),
		Slug:        formPtr(c, "slug"),
		Description: formPtr(c, "description"),
		ProjectType: formPtr(c, "projectType"),
		ClientName:  formPtr(c, "clientName"),
		Location:    formPtr(c, "location"),
		Status:      formPtr(c, "status"),
	}

	var err error
	if in.Styles, err = formStringArray(c, "styles"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.Rooms, err = formStringArray(c, "rooms"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.GalleryTitles, err = formStringArray(c, "galleryTitles"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.GalleryDescriptions, err = formStringArray(c, "galleryDescriptions"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if in.ProjectDate, err = formTime(c, "projectDate"); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cover, err := h.intake.Receive(c, coverImageField)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	gallery, err := h.intake.ReceiveAll(c, galleryFilesField)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	portfolio, warnings, status, err := h.manager.Update(c.Request().Context(),
		c.Param(presentation.SlugParam), in, cover, gallery)
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Portfolio project updated successfully", warnings, "portfolio", portfolio))
}

// HandleDelete handles DELETE /api/portfolios/:slug requests.
func (h *PortfolioHandler) HandleDelete(c echo.Context) error {
	warnings, status, err := h.manager.Delete(c.Request().Context(), c.Param(presentation.SlugParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Portfolio project and associated files deleted successfully", warnings))
}
