package database

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.collection, bson.M{})
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return findAll[models.User](ctx, r.collection, bson.M{"role": role})
}

// FindByEmail returns nil, nil when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.collection, bson.M{"email": email})
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}
