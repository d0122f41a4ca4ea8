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
)

type Portfolio struct {
	store         database.PortfolioStore
	deriver       storage.Deriver
	remover       storage.Remover
	coverWidths   map[string]int
	galleryWidths map[string]int
}

func NewPortfolio(store database.PortfolioStore, deriver storage.Deriver, remover storage.Remover,
	coverWidths, galleryWidths map[string]int,
) *Portfolio {
	return &Portfolio{
		store:         store,
		deriver:       deriver,
		remover:       remover,
		coverWidths:   coverWidths,
		galleryWidths: galleryWidths,
	}
}

func (u *Portfolio) Create(ctx context.Context, in dto.CreatePortfolioInput, cover *dto.Upload,
	gallery []dto.Upload, author model.Principal,
) (*model.Portfolio, int, error) {
	defer discardUpload(cover)
	defer discardUploads(gallery)

	if in.Title == "" || in.Slug == "" {
		return nil, http.StatusBadRequest, errors.New("Title and slug are required")
	}
	if in.Status != "" && !model.ValidStatus(in.Status) {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid status %q", in.Status)
	}

	exists, err := u.store.SlugExists(ctx, in.Slug)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("couldn't check slug")
	}
	if exists {
		return nil, http.StatusBadRequest, errors.New("This slug is already in use.")
	}

	coverRef, entries, written, err := u.generateImages(ctx, cover, gallery, in.GalleryTitles, in.GalleryDescriptions)
	if err != nil {
		logger.Error("portfolio create: image pipeline failed", "slug", in.Slug, "err", err)

		return nil, http.StatusInternalServerError, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusDraft
	}

	now := time.Now().UTC()
	portfolio := &model.Portfolio{
		Title:       in.Title,
		Slug:        in.Slug,
		AuthorID:    author.ID,
		Description: in.Description,
		ProjectType: in.ProjectType,
		Styles:      in.Styles,
		Rooms:       in.Rooms,
		ClientName:  in.ClientName,
		Location:    in.Location,
		ProjectDate: in.ProjectDate,
		Status:      status,
		CoverImage:  coverRef,
		Gallery:     entries,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.store.Insert(ctx, portfolio); err != nil {
		u.rollbackFiles(ctx, written)

		if mongo.IsDuplicateKeyError(err) {
			return nil, http.StatusBadRequest, errors.New("This slug is already in use.")
		}
		logger.Error("portfolio create: insert failed", "slug", in.Slug, "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't save portfolio")
	}

	return portfolio, http.StatusCreated, nil
}

func (u *Portfolio) List(ctx context.Context, q dto.ListPortfoliosQuery,
	caller *model.Principal,
) ([]model.Portfolio, int, error) {
	if !caller.IsAdmin() {
		q.Status = model.StatusPublished
	} else if q.Status == "" {
		q.Status = model.StatusPublished
	} else if q.Status == "all" {
		q.Status = ""
	}

	portfolios, err := u.store.List(ctx, q)
	if err != nil {
		logger.Error("portfolio list failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch portfolio")
	}

	return portfolios, http.StatusOK, nil
}

func (u *Portfolio) GetBySlug(ctx context.Context, slug string,
	caller *model.Principal,
) (*model.Portfolio, int, error) {
	portfolio, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Portfolio project not found")
		}

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch portfolio")
	}

	if portfolio.Status != model.StatusPublished && !caller.IsAdmin() {
		return nil, http.StatusForbidden, errors.New("You are not authorized to view this content")
	}

	return portfolio, http.StatusOK, nil
}

func (u *Portfolio) Update(ctx context.Context, slug string, in dto.UpdatePortfolioInput,
	cover *dto.Upload, gallery []dto.Upload,
) (*model.Portfolio, []string, int, error) {
	defer discardUpload(cover)
	defer discardUploads(gallery)

	existing, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, http.StatusNotFound, errors.New("Portfolio project not found")
		}

		return nil, nil, http.StatusInternalServerError, errors.New("couldn't fetch portfolio")
	}

	if in.Slug != nil && *in.Slug != slug {
		exists, err := u.store.SlugExists(ctx, *in.Slug)
		if err != nil {
			return nil, nil, http.StatusInternalServerError, errors.New("couldn't check slug")
		}
		if exists {
			return nil, nil, http.StatusBadRequest, errors.New("This slug is already in use.")
		}
	}
	if in.Status != nil && !model.ValidStatus(*in.Status) {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("invalid status %q", *in.Status)
	}

	set := map[string]any{"updatedAt": time.Now().UTC()}
	setIfPresent(set, "title", in.Title)
	setIfPresent(set, "slug", in.Slug)
	setIfPresent(set, "description", in.Description)
	setIfPresent(set, "projectType", in.ProjectType)
	setIfPresent(set, "clientName", in.ClientName)
	setIfPresent(set, "location", in.Location)
	setIfPresent(set, "status", in.Status)
	if in.Styles != nil {
		set["styles"] = in.Styles
	}
	if in.Rooms != nil {
		set["rooms"] = in.Rooms
	}
	if in.ProjectDate != nil {
		set["projectDate"] = *in.ProjectDate
	}

	// New files are generated and attached before the superseded ones are
	// deleted; a crash mid-update leaks files rather than dangling the
	// document.
	coverRef, entries, written, err := u.generateImages(ctx, cover, gallery, in.GalleryTitles, in.GalleryDescriptions)
	if err != nil {
		logger.Error("portfolio update: image pipeline failed", "slug", slug, "err", err)

		return nil, nil, http.StatusInternalServerError, err
	}
	if coverRef != nil {
		set["coverImage"] = coverRef
	}
	if len(entries) > 0 {
		set["gallery"] = entries
	}

	updated, err := u.store.UpdateBySlug(ctx, slug, set)
	if err != nil {
		u.rollbackFiles(ctx, written)

		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, http.StatusNotFound, errors.New("Portfolio project not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil, http.StatusBadRequest, errors.New("This slug is already in use.")
		}
		logger.Error("portfolio update failed", "slug", slug, "err", err)

		return nil, nil, http.StatusInternalServerError, errors.New("couldn't update portfolio")
	}

	// Wholesale replacement: superseded maps lose all their files.
	var superseded []string
	if coverRef != nil {
		superseded = append(superseded, existing.CoverImage.OwnedLocations()...)
	}
	if len(entries) > 0 {
		for _, entry := range existing.Gallery {
			superseded = append(superseded, entry.Image.Locations()...)
		}
	}
	warnings := cleanupWarnings(u.remover.RemoveAll(ctx, superseded))

	return updated, warnings, http.StatusOK, nil
}

func (u *Portfolio) Delete(ctx context.Context, slug string) ([]string, int, error) {
	portfolio, err := u.store.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Portfolio project not found")
		}

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch portfolio")
	}

	warnings := cleanupWarnings(u.remover.RemoveAll(ctx, portfolio.OwnedLocations()))

	if err := u.store.DeleteByID(ctx, portfolio.ID); err != nil {
		logger.Error("portfolio delete failed", "slug", slug, "err", err)

		return warnings, http.StatusInternalServerError, errors.New("couldn't delete portfolio")
	}

	return warnings, http.StatusOK, nil
}

// generateImages runs the pipeline for the cover and every gallery upload.
// On failure everything written so far is rolled back and nothing is
// returned; the result is never partial.
func (u *Portfolio) generateImages(ctx context.Context, cover *dto.Upload, gallery []dto.Upload,
	titles, descriptions []string,
) (*model.ImageRef, []model.GalleryEntry, []string, error) {
	var written []string

	var coverRef *model.ImageRef
	if cover != nil {
		paths, err := u.deriver.Derive(ctx, cover.Path, cover.OriginalName, CategoryPortfolio, u.coverWidths)
		if err != nil {
			return nil, nil, nil, err
		}
		coverRef = model.NewVersionedAsset(paths)
		written = append(written, paths.Locations()...)
	}

	var entries []model.GalleryEntry
	for i, upload := range gallery {
		paths, err := u.deriver.Derive(ctx, upload.Path, upload.OriginalName, CategoryPortfolio, u.galleryWidths)
		if err != nil {
			u.rollbackFiles(ctx, written)

			return nil, nil, nil, err
		}
		written = append(written, paths.Locations()...)

		entries = append(entries, model.NewGalleryEntry(indexOrEmpty(titles, i), indexOrEmpty(descriptions, i), paths))
	}

	return coverRef, entries, written, nil
}

func (u *Portfolio) rollbackFiles(ctx context.Context, locations []string) {
	if len(locations) == 0 {
		return
	}
	if failed := storage.FailedLocations(u.remover.RemoveAll(ctx, locations)); len(failed) > 0 {
		logger.Error("rollback left files behind", "locations", failed)
	}
}

func indexOrEmpty(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}

	return ""
}

func discardUploads(uploads []dto.Upload) {
	for i := range uploads {
		discardUpload(&uploads[i])
	}
}
