package abstraction

import (
	"context"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type CategoryManager interface {
	Create(ctx context.Context, in dto.CreateCategoryInput,
		author model.Principal) (*model.Category, int, error)
	List(ctx context.Context) ([]model.Category, int, error)
	GetByID(ctx context.Context, id string) (*model.Category, int, error)
	Update(ctx context.Context, id string, in dto.UpdateCategoryInput) (*model.Category, int, error)
	Delete(ctx context.Context, id string) (int, error)
}
