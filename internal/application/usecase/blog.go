package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
	"atelier/internal/domain/repository/database"
	"atelier/internal/domain/repository/storage"
	"atelier/pkg/logger"
	"atelier/pkg/utils"
)

const (
	defaultPageLimit = 10
	excerptLength    = 150
)

type Blog struct {
	store   database.BlogStore
	deriver storage.Deriver
	remover storage.Remover
	widths  map[string]int
}

func NewBlog(store database.BlogStore, deriver storage.Deriver, remover storage.Remover,
	widths map[string]int,
) *Blog {
	return &Blog{
		store:   store,
		deriver: deriver,
		remover: remover,
		widths:  widths,
	}
}

func (u *Blog) Create(ctx context.Context, in dto.CreateBlogInput, upload *dto.Upload,
	author model.Principal,
) (*model.Blog, int, error) {
	defer discardUpload(upload)

	if in.Title == "" || in.Content == "" {
		return nil, http.StatusBadRequest, errors.New("Title and content are required")
	}
	if in.Status != "" && !model.ValidStatus(in.Status) {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid status %q", in.Status)
	}

	slug, err := u.availableSlug(ctx, in.Title)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	var featured *model.ImageRef
	if upload != nil {
		paths, err := u.deriver.Derive(ctx, upload.Path, upload.OriginalName, CategoryBlog, u.widths)
		if err != nil {
			logger.Error("blog create: image pipeline failed", "slug", slug, "err", err)

			return nil, http.StatusInternalServerError, err
		}
		featured = model.NewVersionedAsset(paths)
	}

	status := in.Status
	if status == "" {
		status = model.StatusDraft
	}

	now := time.Now().UTC()
	excerpt := in.Excerpt
	if excerpt == "" {
		excerpt = utils.Excerpt(in.Content, excerptLength)
	}

	blog := &model.Blog{
		Title:         in.Title,
		Slug:          slug,
		AuthorID:      author.ID,
		Excerpt:       excerpt,
		Content:       in.Content,
		Tags:          in.Tags,
		Categories:    in.Categories,
		FeaturedImage: featured,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if status == model.StatusPublished {
		blog.PublishedAt = &now
	}

	if err := u.store.Insert(ctx, blog); err != nil {
		u.rollbackFiles(ctx, featured.OwnedLocations())

		if mongo.IsDuplicateKeyError(err) {
			return nil, http.StatusBadRequest, errors.New("Slug already exists")
		}
		logger.Error("blog create: insert failed", "slug", slug, "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't save blog")
	}

	return blog, http.StatusCreated, nil
}

func (u *Blog) List(ctx context.Context, q dto.ListBlogsQuery,
	caller *model.Principal,
) ([]model.Blog, dto.Pagination, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}

	// Non-published documents are visible only to admins.
	if !caller.IsAdmin() {
		q.Status = model.StatusPublished
	} else if q.Status == "" {
		q.Status = model.StatusPublished
	} else if q.Status == "all" {
		q.Status = ""
	}

	blogs, total, err := u.store.List(ctx, q)
	if err != nil {
		logger.Error("blog list failed", "err", err)

		return nil, dto.Pagination{}, http.StatusInternalServerError, errors.New("couldn't fetch blogs")
	}

	pagination := dto.Pagination{
		CurrentPage:  q.Page,
		TotalPages:   int((total + int64(q.Limit) - 1) / int64(q.Limit)),
		TotalItems:   total,
		ItemsPerPage: q.Limit,
	}

	return blogs, pagination, http.StatusOK, nil
}

func (u *Blog) GetBySlug(ctx context.Context, slug string, caller *model.Principal) (*model.Blog, int, error) {
	blog, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Blog not found")
		}

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch blog")
	}

	if blog.Status != model.StatusPublished && !caller.IsAdmin() {
		return nil, http.StatusForbidden, errors.New("Only admins can view unpublished blogs")
	}

	return blog, http.StatusOK, nil
}

func (u *Blog) Update(ctx context.Context, slug string, in dto.UpdateBlogInput,
	upload *dto.Upload,
) (*model.Blog, []string, int, error) {
	defer discardUpload(upload)

	existing, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, http.StatusNotFound, errors.New("Blog not found")
		}

		return nil, nil, http.StatusInternalServerError, errors.New("couldn't fetch blog")
	}

	if in.Slug != nil && *in.Slug != slug {
		exists, err := u.store.SlugExists(ctx, *in.Slug)
		if err != nil {
			return nil, nil, http.StatusInternalServerError, errors.New("couldn't check slug")
		}
		if exists {
			return nil, nil, http.StatusBadRequest, errors.New("Slug already exists")
		}
	}
	if in.Status != nil && !model.ValidStatus(*in.Status) {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("invalid status %q", *in.Status)
	}

	set := map[string]any{"updatedAt": time.Now().UTC()}
	setIfPresent(set, "title", in.Title)
	setIfPresent(set, "slug", in.Slug)
	setIfPresent(set, "excerpt", in.Excerpt)
	setIfPresent(set, "content", in.Content)
	setIfPresent(set, "status", in.Status)
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	if in.Categories != nil {
		set["categories"] = in.Categories
	}
	if in.PublishedAt != nil {
		set["publishedAt"] = *in.PublishedAt
	} else if in.Status != nil && *in.Status == model.StatusPublished && existing.PublishedAt == nil {
		now := time.Now().UTC()
		set["publishedAt"] = now
	}

	// New image: generate first, attach, and only then delete the old
	// files, so a crash mid-update leaks a file instead of leaving the
	// document pointing at nothing.
	var newPaths model.AssetPathMap
	if upload != nil {
		newPaths, err = u.deriver.Derive(ctx, upload.Path, upload.OriginalName, CategoryBlog, u.widths)
		if err != nil {
			logger.Error("blog update: image pipeline failed", "slug", slug, "err", err)

			return nil, nil, http.StatusInternalServerError, err
		}
		set["featuredImage"] = model.NewVersionedAsset(newPaths)
	}

	updated, err := u.store.UpdateBySlug(ctx, slug, set)
	if err != nil {
		u.rollbackFiles(ctx, newPaths.Locations())

		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, http.StatusNotFound, errors.New("Blog not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil, http.StatusBadRequest, errors.New("Slug already exists")
		}
		logger.Error("blog update failed", "slug", slug, "err", err)

		return nil, nil, http.StatusInternalServerError, errors.New("couldn't update blog")
	}

	var warnings []string
	if upload != nil {
		results := u.remover.RemoveAll(ctx, existing.FeaturedImage.OwnedLocations())
		warnings = cleanupWarnings(results)
	}

	return updated, warnings, http.StatusOK, nil
}

func (u *Blog) Delete(ctx context.Context, slug string) ([]string, int, error) {
	blog, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Blog not found")
		}

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch blog")
	}

	results := u.remover.RemoveAll(ctx, blog.FeaturedImage.OwnedLocations())
	warnings := cleanupWarnings(results)

	if err := u.store.DeleteByID(ctx, blog.ID); err != nil {
		logger.Error("blog delete failed", "slug", slug, "err", err)

		return warnings, http.StatusInternalServerError, errors.New("couldn't delete blog")
	}

	return warnings, http.StatusOK, nil
}

// availableSlug slugifies the title and suffixes -2, -3, ... until unused.
func (u *Blog) availableSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	for counter := 2; ; counter++ {
		exists, err := u.store.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (u *Blog) rollbackFiles(ctx context.Context, locations []string) {
	if len(locations) == 0 {
		return
	}
	if failed := storage.FailedLocations(u.remover.RemoveAll(ctx, locations)); len(failed) > 0 {
		logger.Error("rollback left files behind", "locations", failed)
	}
}

func setIfPresent(set map[string]any, key string, value *string) {
	if value != nil {
		set[key] = *value
	}
}
