package usecase

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
	"atelier/internal/domain/repository/database"
	"atelier/internal/domain/repository/storage"
	"atelier/pkg/logger"
)

type Media struct {
	store   database.MediaStore
	deriver storage.Deriver
	remover storage.Remover
	widths  map[string]int
}

func NewMedia(store database.MediaStore, deriver storage.Deriver, remover storage.Remover,
	widths map[string]int,
) *Media {
	return &Media{
		store:   store,
		deriver: deriver,
		remover: remover,
		widths:  widths,
	}
}

func (u *Media) Create(ctx context.Context, in dto.CreateMediaInput, upload *dto.Upload,
	uploader model.Principal,
) (*model.Media, int, error) {
	defer discardUpload(upload)

	if upload == nil {
		return nil, http.StatusBadRequest, errors.New("No file uploaded")
	}

	paths, err := u.deriver.Derive(ctx, upload.Path, upload.OriginalName, CategoryMedia, u.widths)
	if err != nil {
		logger.Error("media upload: image pipeline failed", "file", upload.OriginalName, "err", err)

		return nil, http.StatusInternalServerError, err
	}

	now := time.Now().UTC()
	media := &model.Media{
		Filename:    path.Base(paths[model.VariantOriginal]),
		Title:       in.Title,
		Description: in.Description,
		AltText:     in.AltText,
		Type:        "image",
		MimeType:    upload.MimeType,
		Size:        upload.Size,
		Tags:        in.Tags,
		Versions:    paths,
		UploadedBy:  uploader.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.store.Insert(ctx, media); err != nil {
		u.rollbackFiles(ctx, paths.Locations())
		logger.Error("media upload: insert failed", "file", media.Filename, "err", err)

		return nil, http.StatusInternalServerError, errors.New("Failed to upload media")
	}

	return media, http.StatusCreated, nil
}

func (u *Media) List(ctx context.Context, q dto.ListMediaQuery) ([]model.Media, int, error) {
	media, err := u.store.List(ctx, q)
	if err != nil {
		logger.Error("media list failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("Failed to fetch media")
	}

	return media, http.StatusOK, nil
}

func (u *Media) GetByID(ctx context.Context, id string) (*model.Media, int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid media id")
	}

	media, err := u.store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Media not found")
		}

		return nil, http.StatusInternalServerError, errors.New("Failed to get media")
	}

	return media, http.StatusOK, nil
}

// Update changes metadata only; stored paths are immutable for the life of
// the record.
func (u *Media) Update(ctx context.Context, id string, in dto.UpdateMediaInput) (*model.Media, int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid media id")
	}

	set := map[string]any{"updatedAt": time.Now().UTC()}
	setIfPresent(set, "title", in.Title)
	setIfPresent(set, "description", in.Description)
	setIfPresent(set, "altText", in.AltText)
	if in.Tags != nil {
		set["tags"] = in.Tags
	}

	media, err := u.store.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Media not found")
		}
		logger.Error("media update failed", "id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("Failed to update media")
	}

	return media, http.StatusOK, nil
}

func (u *Media) Delete(ctx context.Context, id string) ([]string, int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid media id")
	}

	media, err := u.store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Media not found")
		}

		return nil, http.StatusInternalServerError, errors.New("Failed to get media")
	}

	warnings := cleanupWarnings(u.remover.RemoveAll(ctx, media.Versions.Locations()))

	if err := u.store.DeleteByID(ctx, oid); err != nil {
		logger.Error("media delete failed", "id", id, "err", err)

		return warnings, http.StatusInternalServerError, errors.New("Failed to delete media")
	}

	return warnings, http.StatusOK, nil
}

func (u *Media) rollbackFiles(ctx context.Context, locations []string) {
	if len(locations) == 0 {
		return
	}
	if failed := storage.FailedLocations(u.remover.RemoveAll(ctx, locations)); len(failed) > 0 {
		logger.Error("rollback left files behind", "locations", failed)
	}
}
