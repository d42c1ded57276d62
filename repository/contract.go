package repository

import (
	"context"

	"github.com/go-faster/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

// ErrNotFound is returned by writes that target a document which no longer exists.
// Reads report absence as a nil result instead.
var ErrNotFound = errors.New("document not found")

type ProductRepository interface {
	Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	// FindByID returns (nil, nil) when id does not resolve to a document.
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// Create assigns the id and timestamps to p and inserts it.
	Create(ctx context.Context, p *models.Product) error
	// UpdateByID applies a partial $set and returns the post-update document, or nil.
	UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	// DeleteByID returns the removed document, or nil.
	DeleteByID(ctx context.Context, id string) (*models.Product, error)
	DeleteAll(ctx context.Context) (models.DeleteSummary, error)
	// Save replaces the whole stored document with p. Concurrent Saves of the same
	// product are last-writer-wins.
	Save(ctx context.Context, p *models.Product) error
}

type UserRepository interface {
	// Create returns errs.ErrUserAlreadyExists when the username is taken.
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, id primitive.ObjectID, admin bool) error
}
