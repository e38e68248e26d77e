package database

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository struct {
	collection *mongo.Collection
}

func NewEnrollmentRepository(collection *mongo.Collection) *EnrollmentRepository {
	return &EnrollmentRepository{collection: collection}
}

// Create stores the enrollment as given; the referenced class and student are not checked.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (*models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, email string) ([]models.Enrollment, error) {
	return findAll[models.Enrollment](ctx, r.collection, bson.M{"email": email})
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	return findOne[models.Enrollment](ctx, r.collection, bson.M{"_id": id})
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}
