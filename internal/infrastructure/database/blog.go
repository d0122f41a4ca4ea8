package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type BlogRepository struct {
	db *Database
}

func NewBlogRepository(db *Database) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) coll() *mongo.Collection {
	return r.db.Client.Database(r.db.DBName).Collection(BlogCollection)
}

func (r *BlogRepository) Insert(ctx context.Context, blog *model.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.coll().InsertOne(ctx, blog)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		blog.ID = id
	}

	return nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var blog model.Blog
	if err := r.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&blog); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	count, err := r.coll().CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// List returns one page of blogs plus the total match count. An empty
// q.Status means no status filter; the usecase narrows it for non-admins.
func (r *BlogRepository) List(ctx context.Context, q dto.ListBlogsQuery) ([]model.Blog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	total, err := r.coll().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []model.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *BlogRepository) UpdateBySlug(ctx context.Context, slug string, set map[string]any) (*model.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog model.Blog
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M(set)}, opts).Decode(&blog)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *BlogRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
