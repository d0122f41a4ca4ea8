package abstraction

import (
	"context"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

// BlogManager is the blog CRUD orchestrator. Operations return the HTTP
// status the handler should answer with; mutations also return per-file
// cleanup warnings.
type BlogManager interface {
	Create(ctx context.Context, in dto.CreateBlogInput, upload *dto.Upload,
		author model.Principal) (*model.Blog, int, error)
	List(ctx context.Context, q dto.ListBlogsQuery,
		caller *model.Principal) ([]model.Blog, dto.Pagination, int, error)
	GetBySlug(ctx context.Context, slug string, caller *model.Principal) (*model.Blog, int, error)
	Update(ctx context.Context, slug string, in dto.UpdateBlogInput,
		upload *dto.Upload) (*model.Blog, []string, int, error)
	Delete(ctx context.Context, slug string) ([]string, int, error)
}
