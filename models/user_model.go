package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

type User struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email" validate:"required,email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}
