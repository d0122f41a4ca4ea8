package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type MediaStore interface {
	Insert(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Media, error)
	List(ctx context.Context, q dto.ListMediaQuery) ([]model.Media, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) (*model.Media, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
