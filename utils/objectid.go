package utils

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

// ParseObjectID validates a path id before it reaches the store.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidIdentifier
	}
	return id, nil
}

func IsObjectID(hex string) bool {
	_, err := ParseObjectID(hex)
	return err == nil
}
