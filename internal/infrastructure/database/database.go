package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlogCollection      = "blogs"
	PortfolioCollection = "portfolios"
	MediaCollection     = "media"
	CategoryCollection  = "categories"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initIndexes(db); err != nil {
		return nil, err
	}

	return db, nil
}

// initIndexes enforces slug/name uniqueness at the store level, backing the
// usecase-level duplicate checks against races.
func initIndexes(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		BlogCollection:      {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		PortfolioCollection: {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		CategoryCollection:  {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		MediaCollection:     {Keys: bson.D{{Key: "filename", Value: 1}}},
	}

	for coll, model := range indexes {
		_, err := db.Client.Database(db.DBName).Collection(coll).Indexes().CreateOne(ctx, model)
		if err != nil {
			return err
		}
	}

	return nil
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
