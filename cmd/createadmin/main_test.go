package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

type fakeUsers struct {
	byName map[string]*models.User
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.byName[u.Username] = u
	return nil
}

func (f *fakeUsers) FindByID(context.Context, string) (*models.User, error) { return nil, nil }

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return f.byName[username], nil
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeUsers) SetAdmin(_ context.Context, id primitive.ObjectID, admin bool) error {
	for _, u := range f.byName {
		if u.ID == id {
			u.Admin = admin
		}
	}
	return nil
}

func TestEnsureAdmin_CreatesAccount(t *testing.T) {
	users := &fakeUsers{byName: map[string]*models.User{}}

	created, err := ensureAdmin(context.Background(), users, "root", "hunter22")
	require.NoError(t, err)
	assert.True(t, created)

	u := users.byName["root"]
	require.NotNil(t, u)
	assert.True(t, u.Admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")))
}

func TestEnsureAdmin_PromotesExisting(t *testing.T) {
	existing := &models.User{ID: primitive.NewObjectID(), Username: "ali", Password: "hash"}
	users := &fakeUsers{byName: map[string]*models.User{"ali": existing}}

	created, err := ensureAdmin(context.Background(), users, "ali", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, existing.Admin)
	assert.Equal(t, "hash", existing.Password)
}

func TestEnsureAdmin_ShortPassword(t *testing.T) {
	users := &fakeUsers{byName: map[string]*models.User{}}

	_, err := ensureAdmin(context.Background(), users, "root", "123")
	require.Error(t, err)
	assert.Empty(t, users.byName)
}
