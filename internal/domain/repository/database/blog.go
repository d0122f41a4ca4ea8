package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type BlogStore interface {
	Insert(ctx context.Context, blog *model.Blog) error
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, q dto.ListBlogsQuery) ([]model.Blog, int64, error)
	UpdateBySlug(ctx context.Context, slug string, set map[string]any) (*model.Blog, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
