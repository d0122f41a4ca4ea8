package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"atelier/internal/domain/dto"
	"atelier/internal/domain/model"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())
	uri := fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func TestBlogRepository(t *testing.T) {
	t.Parallel()
	db := setupMongo(t)

	repo := NewBlogRepository(db)
	ctx := context.Background()

	blog := &model.Blog{
		Title:   "First",
		Slug:    "first",
		Content: "content",
		Status:  model.StatusPublished,
		FeaturedImage: model.NewVersionedAsset(model.AssetPathMap{
			model.VariantOriginal: "/uploads/blog/original/a.png",
			model.VariantSmall:    "/uploads/blog/small/a.png",
		}),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	require.NoError(t, repo.Insert(ctx, blog))
	require.False(t, blog.ID.IsZero())

	// the unique slug index turns a replay into a duplicate key error
	err := repo.Insert(ctx, &model.Blog{Title: "Clone", Slug: "first"})
	require.True(t, mongo.IsDuplicateKeyError(err))

	exists, err := repo.SlugExists(ctx, "first")
	require.NoError(t, err)
	require.True(t, exists)

	got, err := repo.GetBySlug(ctx, "first")
	require.NoError(t, err)
	require.Equal(t, "First", got.Title)

	// the image reference survives the round trip with its shape intact
	require.NotNil(t, got.FeaturedImage)
	require.Equal(t, model.RefVersioned, got.FeaturedImage.Kind())
	require.Equal(t, "/uploads/blog/small/a.png", got.FeaturedImage.Versions[model.VariantSmall])

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, mongo.ErrNoDocuments)

	updated, err := repo.UpdateBySlug(ctx, "first", map[string]any{"title": "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)

	blogs, total, err := repo.List(ctx, dto.ListBlogsQuery{Page: 1, Limit: 10, Status: model.StatusPublished})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, blogs, 1)

	require.NoError(t, repo.DeleteByID(ctx, blog.ID))
	require.ErrorIs(t, repo.DeleteByID(ctx, blog.ID), mongo.ErrNoDocuments)
}

func TestCategoryRepositoryUniqueName(t *testing.T) {
	t.Parallel()
	db := setupMongo(t)

	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &model.Category{Name: "Interiors"}))

	exists, err := repo.NameExists(ctx, "Interiors")
	require.NoError(t, err)
	require.True(t, exists)

	err = repo.Insert(ctx, &model.Category{Name: "Interiors"})
	require.True(t, mongo.IsDuplicateKeyError(err))
}
