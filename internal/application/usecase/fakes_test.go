package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
	storageRepository "atelier/internal/domain/repository/storage"
)

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// fakeDeriver hands out a fresh path map per call without touching disk.
// failAfter > 0 makes every call past the first failAfter calls fail.
type fakeDeriver struct {
	calls     int
	failAfter int
	err       error
}

func (d *fakeDeriver) Derive(_ context.Context, _, filename, category string,
	widths map[string]int,
) (model.AssetPathMap, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.failAfter > 0 && d.calls >= d.failAfter {
		return nil, errors.New("variant generation failed")
	}
	d.calls++

	name := fmt.Sprintf("%d-%s", d.calls, filename)
	paths := model.AssetPathMap{
		model.VariantOriginal: path.Join("/uploads", category, model.VariantOriginal, name),
	}
	for variant := range widths {
		paths[variant] = path.Join("/uploads", category, variant, name)
	}

	return paths, nil
}

type fakeRemover struct {
	removed []string
	fail    map[string]error
}

func (r *fakeRemover) RemoveAll(_ context.Context, locations []string) []storageRepository.RemoveResult {
	results := make([]storageRepository.RemoveResult, 0, len(locations))
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		r.removed = append(r.removed, loc)
		results = append(results, storageRepository.RemoveResult{Location: loc, Err: r.fail[loc]})
	}

	return results
}

type fakeBlogStore struct {
	blogs     map[string]*model.Blog
	insertErr error
	updateErr error
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[string]*model.Blog)}
}

func (s *fakeBlogStore) Insert(_ context.Context, blog *model.Blog) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, exists := s.blogs[blog.Slug]; exists {
		return duplicateKeyErr()
	}
	blog.ID = primitive.NewObjectID()
	s.blogs[blog.Slug] = blog

	return nil
}

func (s *fakeBlogStore) GetBySlug(_ context.Context, slug string) (*model.Blog, error) {
	blog, ok := s.blogs[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *blog

	return &copied, nil
}

func (s *fakeBlogStore) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := s.blogs[slug]

	return ok, nil
}

func (s *fakeBlogStore) List(_ context.Context, q dto.ListBlogsQuery) ([]model.Blog, int64, error) {
	var out []model.Blog
	for _, blog := range s.blogs {
		if q.Status != "" && blog.Status != q.Status {
			continue
		}
		out = append(out, *blog)
	}

	return out, int64(len(out)), nil
}

func (s *fakeBlogStore) UpdateBySlug(_ context.Context, slug string, set map[string]any) (*model.Blog, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	blog, ok := s.blogs[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	applyBlogSet(blog, set)
	if blog.Slug != slug {
		delete(s.blogs, slug)
		s.blogs[blog.Slug] = blog
	}
	copied := *blog

	return &copied, nil
}

func (s *fakeBlogStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for slug, blog := range s.blogs {
		if blog.ID == id {
			delete(s.blogs, slug)

			return nil
		}
	}

	return mongo.ErrNoDocuments
}

func applyBlogSet(blog *model.Blog, set map[string]any) {
	for key, value := range set {
		switch key {
		case "title":
			blog.Title = value.(string)
		case "slug":
			blog.Slug = value.(string)
		case "excerpt":
			blog.Excerpt = value.(string)
		case "content":
			blog.Content = value.(string)
		case "status":
			blog.Status = value.(string)
		case "tags":
			blog.Tags = value.([]string)
		case "categories":
			blog.Categories = value.([]string)
		case "featuredImage":
			blog.FeaturedImage = value.(*model.ImageRef)
		}
	}
}

type fakePortfolioStore struct {
	portfolios map[string]*model.Portfolio
	insertErr  error
	updateErr  error
}

func newFakePortfolioStore() *fakePortfolioStore {
	return &fakePortfolioStore{portfolios: make(map[string]*model.Portfolio)}
}

func (s *fakePortfolioStore) Insert(_ context.Context, portfolio *model.Portfolio) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if _, exists := s.portfolios[portfolio.Slug]; exists {
		return duplicateKeyErr()
	}
	portfolio.ID = primitive.NewObjectID()
	s.portfolios[portfolio.Slug] = portfolio

	return nil
}

func (s *fakePortfolioStore) GetBySlug(_ context.Context, slug string) (*model.Portfolio, error) {
	portfolio, ok := s.portfolios[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *portfolio

	return &copied, nil
}

func (s *fakePortfolioStore) SlugExists(_ context.Context, slug string) (bool, error) {
	_, ok := s.portfolios[slug]

	return ok, nil
}

func (s *fakePortfolioStore) List(_ context.Context, q dto.ListPortfoliosQuery) ([]model.Portfolio, error) {
	var out []model.Portfolio
	for _, portfolio := range s.portfolios {
		if q.Status != "" && portfolio.Status != q.Status {
			continue
		}
		out = append(out, *portfolio)
	}

	return out, nil
}

func (s *fakePortfolioStore) UpdateBySlug(_ context.Context, slug string,
	set map[string]any,
) (*model.Portfolio, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	portfolio, ok := s.portfolios[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			portfolio.Title = value.(string)
		case "slug":
			portfolio.Slug = value.(string)
		case "status":
			portfolio.Status = value.(string)
		case "coverImage":
			portfolio.CoverImage = value.(*model.ImageRef)
		case "gallery":
			portfolio.Gallery = value.([]model.GalleryEntry)
		}
	}
	if portfolio.Slug != slug {
		delete(s.portfolios, slug)
		s.portfolios[portfolio.Slug] = portfolio
	}
	copied := *portfolio

	return &copied, nil
}

func (s *fakePortfolioStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	for slug, portfolio := range s.portfolios {
		if portfolio.ID == id {
			delete(s.portfolios, slug)

			return nil
		}
	}

	return mongo.ErrNoDocuments
}

type fakeMediaStore struct {
	media     map[primitive.ObjectID]*model.Media
	insertErr error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{media: make(map[primitive.ObjectID]*model.Media)}
}

func (s *fakeMediaStore) Insert(_ context.Context, media *model.Media) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	media.ID = primitive.NewObjectID()
	s.media[media.ID] = media

	return nil
}

func (s *fakeMediaStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Media, error) {
	media, ok := s.media[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *media

	return &copied, nil
}

func (s *fakeMediaStore) List(_ context.Context, _ dto.ListMediaQuery) ([]model.Media, error) {
	var out []model.Media
	for _, media := range s.media {
		out = append(out, *media)
	}

	return out, nil
}

func (s *fakeMediaStore) UpdateByID(_ context.Context, id primitive.ObjectID,
	set map[string]any,
) (*model.Media, error) {
	media, ok := s.media[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			media.Title = value.(string)
		case "description":
			media.Description = value.(string)
		case "altText":
			media.AltText = value.(string)
		case "tags":
			media.Tags = value.([]string)
		}
	}
	copied := *media

	return &copied, nil
}

func (s *fakeMediaStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.media[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.media, id)

	return nil
}

type fakeCategoryStore struct {
	categories map[primitive.ObjectID]*model.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[primitive.ObjectID]*model.Category)}
}

func (s *fakeCategoryStore) Insert(_ context.Context, category *model.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return duplicateKeyErr()
		}
	}
	category.ID = primitive.NewObjectID()
	s.categories[category.ID] = category

	return nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *category

	return &copied, nil
}

func (s *fakeCategoryStore) NameExists(_ context.Context, name string) (bool, error) {
	for _, category := range s.categories {
		if category.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *fakeCategoryStore) List(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, category := range s.categories {
		out = append(out, *category)
	}

	return out, nil
}

func (s *fakeCategoryStore) UpdateByID(_ context.Context, id primitive.ObjectID,
	set map[string]any,
) (*model.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			category.Name = value.(string)
		case "description":
			category.Description = value.(string)
		}
	}
	copied := *category

	return &copied, nil
}

func (s *fakeCategoryStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.categories[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.categories, id)

	return nil
}
