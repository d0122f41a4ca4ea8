package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type PortfolioStore interface {
	Insert(ctx context.Context, portfolio *model.Portfolio) error
	GetBySlug(ctx context.Context, slug string) (*model.Portfolio, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, q dto.ListPortfoliosQuery) ([]model.Portfolio, error)
	UpdateBySlug(ctx context.Context, slug string, set map[string]any) (*model.Portfolio, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
