package database

import (
	"context"
	"errors"

	"github.com/anjiri1684/precision_martial/models"
	"go.mongodb.org/mongo-driver/mongo"
)

func insertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// findOne decodes a single document into T, returning nil when nothing matched.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// findAll always returns a non-nil slice so empty lists encode as [].
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
