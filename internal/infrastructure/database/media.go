package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

type MediaRepository struct {
	db *Database
}

func NewMediaRepository(db *Database) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) coll() *mongo.Collection {
	return r.db.Client.Database(r.db.DBName).Collection(MediaCollection)
}

func (r *MediaRepository) Insert(ctx context.Context, media *model.Media) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	res, err := r.coll().InsertOne(ctx, media)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		media.ID = id
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var media model.Media
	if err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&media); err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *MediaRepository) List(ctx context.Context, q dto.ListMediaQuery) ([]model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Search != "" {
		filter["filename"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []model.Media
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}

	return media, nil
}

func (r *MediaRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set map[string]any) (*model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var media model.Media
	err := r.coll().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(set)}, opts).Decode(&media)
	if err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *MediaRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
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
