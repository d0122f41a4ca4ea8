package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
	"atelier/internal/domain/repository/database"
	"atelier/pkg/logger"
)

type Category struct {
	store database.CategoryStore
}

func NewCategory(store database.CategoryStore) *Category {
	return &Category{store: store}
}

func (u *Category) Create(ctx context.Context, in dto.CreateCategoryInput,
	author model.Principal,
) (*model.Category, int, error) {
	if in.Name == "" {
		return nil, http.StatusBadRequest, errors.New("Name is required")
	}

	exists, err := u.store.NameExists(ctx, in.Name)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("couldn't check category name")
	}
	if exists {
		return nil, http.StatusBadRequest, errors.New("Category already exists")
	}

	now := time.Now().UTC()
	category := &model.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   author.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.store.Insert(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, http.StatusBadRequest, errors.New("Category already exists")
		}
		logger.Error("category create failed", "name", in.Name, "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't save category")
	}

	return category, http.StatusCreated, nil
}

func (u *Category) List(ctx context.Context) ([]model.Category, int, error) {
	categories, err := u.store.List(ctx)
	if err != nil {
		logger.Error("category list failed", "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch categories")
	}

	return categories, http.StatusOK, nil
}

func (u *Category) GetByID(ctx context.Context, id string) (*model.Category, int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid category id")
	}

	category, err := u.store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Category not found")
		}

		return nil, http.StatusInternalServerError, errors.New("couldn't fetch category")
	}

	return category, http.StatusOK, nil
}

func (u *Category) Update(ctx context.Context, id string, in dto.UpdateCategoryInput) (*model.Category, int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid category id")
	}

	set := map[string]any{"updatedAt": time.Now().UTC()}
	setIfPresent(set, "name", in.Name)
	setIfPresent(set, "description", in.Description)

	category, err := u.store.UpdateByID(ctx, oid, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, http.StatusNotFound, errors.New("Category not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, http.StatusBadRequest, errors.New("Category already exists")
		}
		logger.Error("category update failed", "id", id, "err", err)

		return nil, http.StatusInternalServerError, errors.New("couldn't update category")
	}

	return category, http.StatusOK, nil
}

func (u *Category) Delete(ctx context.Context, id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return http.StatusBadRequest, errors.New("invalid category id")
	}

	if err := u.store.DeleteByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return http.StatusNotFound, errors.New("Category not found")
		}
		logger.Error("category delete failed", "id", id, "err", err)

		return http.StatusInternalServerError, errors.New("couldn't delete category")
	}

	return http.StatusOK, nil
}
