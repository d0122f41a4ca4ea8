package abstraction

import (
	"context"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type MediaManager interface {
	Create(ctx context.Context, in dto.CreateMediaInput, upload *dto.Upload,
		uploader model.Principal) (*model.Media, int, error)
	List(ctx context.Context, q dto.ListMediaQuery) ([]model.Media, int, error)
	GetByID(ctx context.Context, id string) (*model.Media, int, error)
	Update(ctx context.Context, id string, in dto.UpdateMediaInput) (*model.Media, int, error)
	Delete(ctx context.Context, id string) ([]string, int, error)
}
