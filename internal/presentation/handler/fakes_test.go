package handler

import (
	"context"
	"net/http"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type fakeBlogManager struct {
	createIn     dto.CreateBlogInput
	createUpload *dto.Upload
	createAuthor model.Principal
	updateIn     dto.UpdateBlogInput
	updateSlug   string
	listQuery    dto.ListBlogsQuery
	deleteSlug   string

	blog     *model.Blog
	warnings []string
	status   int
	err      error
}

func (m *fakeBlogManager) Create(_ context.Context, in dto.CreateBlogInput, upload *dto.Upload,
	author model.Principal,
) (*model.Blog, int, error) {
	m.createIn, m.createUpload, m.createAuthor = in, upload, author

	return m.blog, m.statusOr(http.StatusCreated), m.err
}

func (m *fakeBlogManager) List(_ context.Context, q dto.ListBlogsQuery,
	_ *model.Principal,
) ([]model.Blog, dto.Pagination, int, error) {
	m.listQuery = q

	return []model.Blog{*m.blog}, dto.Pagination{CurrentPage: 1}, m.statusOr(http.StatusOK), m.err
}

func (m *fakeBlogManager) GetBySlug(_ context.Context, _ string, _ *model.Principal) (*model.Blog, int, error) {
	return m.blog, m.statusOr(http.StatusOK), m.err
}

func (m *fakeBlogManager) Update(_ context.Context, slug string, in dto.UpdateBlogInput,
	_ *dto.Upload,
) (*model.Blog, []string, int, error) {
	m.updateSlug, m.updateIn = slug, in

	return m.blog, m.warnings, m.statusOr(http.StatusOK), m.err
}

func (m *fakeBlogManager) Delete(_ context.Context, slug string) ([]string, int, error) {
	m.deleteSlug = slug

	return m.warnings, m.statusOr(http.StatusOK), m.err
}

func (m *fakeBlogManager) statusOr(fallback int) int {
	if m.status != 0 {
		return m.status
	}

	return fallback
}

type fakeCategoryManager struct {
	createIn dto.CreateCategoryInput
	updateIn dto.UpdateCategoryInput
	updateID string
	deleteID string

	category *model.Category
	status   int
	err      error
}

func (m *fakeCategoryManager) Create(_ context.Context, in dto.CreateCategoryInput,
	_ model.Principal,
) (*model.Category, int, error) {
	m.createIn = in

	return m.category, m.statusOr(http.StatusCreated), m.err
}

func (m *fakeCategoryManager) List(_ context.Context) ([]model.Category, int, error) {
	return []model.Category{*m.category}, m.statusOr(http.StatusOK), m.err
}

func (m *fakeCategoryManager) GetByID(_ context.Context, _ string) (*model.Category, int, error) {
	return m.category, m.statusOr(http.StatusOK), m.err
}

func (m *fakeCategoryManager) Update(_ context.Context, id string,
	in dto.UpdateCategoryInput,
) (*model.Category, int, error) {
	m.updateID, m.updateIn = id, in

	return m.category, m.statusOr(http.StatusOK), m.err
}

func (m *fakeCategoryManager) Delete(_ context.Context, id string) (int, error) {
	m.deleteID = id

	return m.statusOr(http.StatusOK), m.err
}

func (m *fakeCategoryManager) statusOr(fallback int) int {
	if m.status != 0 {
		return m.status
	}

	return fallback
}

type fakeMediaManager struct {
	createIn     dto.CreateMediaInput
	createUpload *dto.Upload
	listQuery    dto.ListMediaQuery
	deleteID     string

	media    *model.Media
	warnings []string
	status   int
	err      error
}

func (m *fakeMediaManager) Create(_ context.Context, in dto.CreateMediaInput, upload *dto.Upload,
	_ model.Principal,
) (*model.Media, int, error) {
	m.createIn, m.createUpload = in, upload

	return m.media, m.statusOr(http.StatusCreated), m.err
}

func (m *fakeMediaManager) List(_ context.Context, q dto.ListMediaQuery) ([]model.Media, int, error) {
	m.listQuery = q

	return []model.Media{*m.media}, m.statusOr(http.StatusOK), m.err
}

func (m *fakeMediaManager) GetByID(_ context.Context, _ string) (*model.Media, int, error) {
	return m.media, m.statusOr(http.StatusOK), m.err
}

func (m *fakeMediaManager) Update(_ context.Context, _ string, _ dto.UpdateMediaInput) (*model.Media, int, error) {
	return m.media, m.statusOr(http.StatusOK), m.err
}

func (m *fakeMediaManager) Delete(_ context.Context, id string) ([]string, int, error) {
	m.deleteID = id

	return m.warnings, m.statusOr(http.StatusOK), m.err
}

func (m *fakeMediaManager) statusOr(fallback int) int {
	if m.status != 0 {
		return m.status
	}

	return fallback
}
