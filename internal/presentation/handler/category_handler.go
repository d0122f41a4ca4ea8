package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"atelier/internal/application/usecase/abstraction"
	"atelier/internal/domain/dto"
	"atelier/internal/presentation"
	"atelier/internal/presentation/middleware"
)

type CategoryHandler struct {
	manager abstraction.CategoryManager
}

func NewCategoryHandler(manager abstraction.CategoryManager) *CategoryHandler {
	return &CategoryHandler{manager: manager}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// HandleCreate handles POST /api/categories requests.
func (h *CategoryHandler) HandleCreate(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	in := dto.CreateCategoryInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	category, status, err := h.manager.Create(c.Request().Context(), in, *middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Category created successfully", nil, "category", category))
}

// HandleList handles GET /api/categories requests.
func (h *CategoryHandler) HandleList(c echo.Context) error {
	categories, status, err := h.manager.List(c.Request().Context())
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Categories fetched successfully", nil, "categories", categories))
}

// HandleGet handles GET /api/categories/:id requests.
func (h *CategoryHandler) HandleGet(c echo.Context) error {
	category, status, err := h.manager.GetByID(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Category fetched successfully", nil, "category", category))
}

// HandleUpdate handles PUT /api/categories/:id requests.
func (h *CategoryHandler) HandleUpdate(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	in := dto.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}

	category, status, err := h.manager.Update(c.Request().Context(), c.Param(presentation.IDParam), in)
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Category updated successfully", nil, "category", category))
}

// HandleDelete handles DELETE /api/categories/:id requests.
func (h *CategoryHandler) HandleDelete(c echo.Context) error {
	status, err := h.manager.Delete(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return respondError(c, status, err)
	}

	return c.JSON(status, envelope("Category deleted successfully", nil))
}
