package repository

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Madhav-Gupta-28/catalog-backend-go/database"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

type MongoDBProductRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
	now        func() time.Time
}

func NewMongoDBProductRepository(db *mongo.Database, timeout time.Duration) *MongoDBProductRepository {
	return &MongoDBProductRepository{
		collection: db.Collection(database.ProductsCollection),
		timeout:    timeout,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *MongoDBProductRepository) Find(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter.BSON())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.Find").Msg("")
		return nil, errors.Wrap(err, "find products")
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.Find").Msg("")
		return nil, errors.Wrap(err, "decode products")
	}
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func (r *MongoDBProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findByObjectID(ctx, oid)
}

func (r *MongoDBProductRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.FindByID").Msg("")
		return nil, errors.Wrapf(err, "find product %s", oid.Hex())
	}
	product.Normalize()
	return &product, nil
}

func (r *MongoDBProductRepository) Create(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := r.now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()

	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.Create").Msg("")
		return errors.Wrap(err, "insert product")
	}
	return nil
}

func (r *MongoDBProductRepository) UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": update.SetDocument(r.now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.UpdateByID").Msg("")
		return nil, errors.Wrapf(err, "update product %s", id)
	}
	product.Normalize()
	return &product, nil
}

func (r *MongoDBProductRepository) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var product models.Product
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.DeleteByID").Msg("")
		return nil, errors.Wrapf(err, "delete product %s", id)
	}
	product.Normalize()
	return &product, nil
}

func (r *MongoDBProductRepository) DeleteAll(ctx context.Context) (models.DeleteSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.DeleteAll").Msg("")
		return models.DeleteSummary{}, errors.Wrap(err, "delete products")
	}
	return models.DeleteSummary{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// Save is a whole-document replace: read, mutate in memory, write back. Two
// concurrent image writes on one product can overwrite each other.
func (r *MongoDBProductRepository) Save(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p.UpdatedAt = r.now()
	p.Normalize()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProductRepository.Save").Msg("")
		return errors.Wrapf(err, "replace product %s", p.ID.Hex())
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
