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

type PortfolioRepository struct {
	db *Database
}

func NewPortfolioRepository(db *Database) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) coll() *mongo.Collection {
	return r.db.Client.Database(r.db.DBName).Collection(PortfolioCollection)
}

func (r *PortfolioRepository) Insert(ctx context.Context, portfolio *model.Portfolio) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.coll().InsertOne(ctx, portfolio)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		portfolio.ID = id
	}

	return nil
}

func (r *PortfolioRepository) GetBySlug(ctx context.Context, slug string) (*model.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var portfolio model.Portfolio
	if err := r.coll().FindOne(ctx, bson.M{"slug": slug}).Decode(&portfolio); err != nil {
		return nil, err
	}

	return &portfolio, nil
}

func (r *PortfolioRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	count, err := r.coll().CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// List returns portfolios newest project first. An empty q.Status means no
// status filter; the usecase narrows it for non-admins.
func (r *PortfolioRepository) List(ctx context.Context, q dto.ListPortfoliosQuery) ([]model.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "projectDate", Value: -1}})

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var portfolios []model.Portfolio
	if err := cursor.All(ctx, &portfolios); err != nil {
		return nil, err
	}

	return portfolios, nil
}

func (r *PortfolioRepository) UpdateBySlug(ctx context.Context, slug string, set map[string]any) (*model.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var portfolio model.Portfolio
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": bson.M(set)}, opts).Decode(&portfolio)
	if err != nil {
		return nil, err
	}

	return &portfolio, nil
}

func (r *PortfolioRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
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
