package database

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClassRepository struct {
	collection *mongo.Collection
}

func NewClassRepository(collection *mongo.Collection) *ClassRepository {
	return &ClassRepository{collection: collection}
}

func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	return findAll[models.Class](ctx, r.collection, bson.M{})
}

func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return findAll[models.Class](ctx, r.collection, bson.M{"email": email})
}

func (r *ClassRepository) ListByStatus(ctx context.Context, status models.ClassStatus) ([]models.Class, error) {
	return findAll[models.Class](ctx, r.collection, bson.M{"status": status})
}

func (r *ClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	return findOne[models.Class](ctx, r.collection, bson.M{"_id": id})
}

// SetStatus moves a class to any status; no transition is refused.
func (r *ClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (*models.UpdateResult, error) {
	return r.update(ctx, id, bson.M{"status": status}, false)
}

func (r *ClassRepository) UpsertFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error) {
	return r.update(ctx, id, bson.M{"feedback": feedback}, true)
}

func (r *ClassRepository) Upsert(ctx context.Context, id primitive.ObjectID, fields models.ClassUpdate) (*models.UpdateResult, error) {
	return r.update(ctx, id, fields, true)
}

func (r *ClassRepository) update(ctx context.Context, id primitive.ObjectID, set interface{}, upsert bool) (*models.UpdateResult, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}
