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
	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
)

type MongoDBUserRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoDBUserRepository(db *mongo.Database, timeout time.Duration) *MongoDBUserRepository {
	return &MongoDBUserRepository{
		collection: db.Collection(database.UsersCollection),
		timeout:    timeout,
	}
}

func (r *MongoDBUserRepository) Create(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrUserAlreadyExists
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.Create").Msg("")
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (r *MongoDBUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoDBUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoDBUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.FindOne").Msg("")
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *MongoDBUserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.List").Msg("")
		return nil, errors.Wrap(err, "find users")
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

func (r *MongoDBUserRepository) SetAdmin(ctx context.Context, id primitive.ObjectID, admin bool) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"admin": admin, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UserRepository.SetAdmin").Msg("")
		return errors.Wrap(err, "update user")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
