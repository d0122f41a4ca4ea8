package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier/internal/domain/model"
)

type CategoryStore interface {
	Insert(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]model.Category, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) (*model.Category, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
