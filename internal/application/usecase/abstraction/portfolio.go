package abstraction

import (
	"context"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type PortfolioManager interface {
	Create(ctx context.Context, in dto.CreatePortfolioInput, cover *dto.Upload,
		gallery []dto.Upload, author model.Principal) (*model.Portfolio, int, error)
	List(ctx context.Context, q dto.ListPortfoliosQuery,
		caller *model.Principal) ([]model.Portfolio, int, error)
	GetBySlug(ctx context.Context, slug string, caller *model.Principal) (*model.Portfolio, int, error)
	Update(ctx context.Context, slug string, in dto.UpdatePortfolioInput,
		cover *dto.Upload, gallery []dto.Upload) (*model.Portfolio, []string, int, error)
	Delete(ctx context.Context, slug string) ([]string, int, error)
}
