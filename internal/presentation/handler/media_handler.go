package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"atelier/internal/application/usecase/abstraction"
	"atelier/internal/domain/dto"
	"atelier/internal/presentation"
	"atelier/internal/presentation/middleware"
)

type MediaHandler struct {
	manager abstraction.MediaManager
	intake  *Intake
}

func NewMediaHandler(manager abstraction.MediaManager, intake *Intake) *MediaHandler {
	return &MediaHandler{
		manager: manager,
		intake:  intake,
	}
}

// HandleUpload handles POST /api/media requests.
func (h *MediaHandler) HandleUpload(c echo.Context) error {
	in := dto.CreateMediaInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		AltText:     c.FormValue("altText"),
		Tags:        splitTags(c.FormValue("tags")),
	}

	upload, err := h.intake.Receive(c, "file")
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}
	if upload == nil {
		return respondError(c, http.StatusBadRequest, errors.New("No file uploaded"))
	}

	media, status, err := h.manager.Create(c.Request().Context(), in, upload, *middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Media uploaded successfully", nil, "media", media))
}

// HandleList handles GET /api/media requests.
func (h *MediaHandler) HandleList(c echo.Context) error {
	q := dto.ListMediaQuery{
		Tag:    c.QueryParam("tag"),
		Type:   c.QueryParam("type"),
		Search: c.QueryParam("search"),
	}

	media, status, err := h.manager.List(c.Request().Context(), q)
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Media fetched successfully", nil, "media", media))
}

// HandleGet handles GET /api/media/:id requests.
func (h *MediaHandler) HandleGet(c echo.Context) error {
	media, status, err := h.manager.GetByID(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Media fetched successfully", nil, "media", media))
}

// HandleUpdate handles PUT /api/media/:id requests. Only metadata changes;
// the stored files are immutable.
func (h *MediaHandler) HandleUpdate(c echo.Context) error {
	in := dto.UpdateMediaInput{
		Title:       formPtr(c, "title"),
		Description: formPtr(c, "description"),
		AltText:     formPtr(c, "altText"),
	}
	if raw, ok := formLookup(c, "tags"); ok {
		in.Tags = splitTags(raw)
	}

	media, status, err := h.manager.Update(c.Request().Context(), c.Param(presentation.IDParam), in)
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Media updated successfully", nil, "media", media))
}

// HandleDelete handles DELETE /api/media/:id requests.
func (h *MediaHandler) HandleDelete(c echo.Context) error {
	warnings, status, err := h.manager.Delete(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Media deleted successfully", warnings))
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
