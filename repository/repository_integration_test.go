//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Madhav-Gupta-28/catalog-backend-go/config"
	"github.com/Madhav-Gupta-28/catalog-backend-go/database"
	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := database.ConnectDB(ctx, config.MongoDBConfig{URI: uri, Database: "catalog_test", Timeout: 10 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Client().Disconnect(context.Background()) })
	return db
}

func TestMongoDBProductRepository(t *testing.T) {
	db := setupDatabase(t)
	repo := NewMongoDBProductRepository(db, 5*time.Second)
	ctx := context.Background()

	p := models.ProductInput{NameTR: "Elma", NameAR: "تفاح", DescriptionTR: "taze", DescriptionAR: "طازج"}.NewProduct(time.Now())
	require.NoError(t, repo.Create(ctx, &p))
	require.False(t, p.ID.IsZero())

	got, err := repo.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Elma", got.NameTR)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)

	missing, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := repo.Find(ctx, models.ProductFilter{NameTR: "Elma"})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	none, err := repo.Find(ctx, models.ProductFilter{NameTR: "Armut"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	name := "Yeşil Elma"
	updated, err := repo.UpdateByID(ctx, p.ID.Hex(), models.ProductUpdate{NameTR: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Yeşil Elma", updated.NameTR)
	assert.Equal(t, "تفاح", updated.NameAR)

	updated.AppendImage(models.ImageInput{Image: "1.png", Width: 10, Height: 10}, nil, time.Now())
	require.NoError(t, repo.Save(ctx, updated))

	reread, err := repo.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, reread.Images, 1)
	assert.Equal(t, "1.png", reread.Images[0].Image)

	removed, err := repo.DeleteByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, removed)

	assert.ErrorIs(t, repo.Save(ctx, reread), ErrNotFound)

	again, err := repo.DeleteByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, again)

	for i := 0; i < 3; i++ {
		q := models.ProductInput{NameTR: "a", NameAR: "b", DescriptionTR: "c", DescriptionAR: "d"}.NewProduct(time.Now())
		require.NoError(t, repo.Create(ctx, &q))
	}
	summary, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.DeletedCount)
}

func TestMongoDBUserRepository(t *testing.T) {
	db := setupDatabase(t)
	repo := NewMongoDBUserRepository(db, 5*time.Second)
	ctx := context.Background()

	u := models.User{Username: "ayse", Password: "hash"}
	require.NoError(t, repo.Create(ctx, &u))

	dup := models.User{Username: "ayse", Password: "hash"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), errs.ErrUserAlreadyExists)

	require.NoError(t, repo.SetAdmin(ctx, u.ID, true))

	got, err := repo.FindByUsername(ctx, "ayse")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Admin)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
