package models

import (
	"encoding/json"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "deny"
)

// Class is a listing created by an instructor. Name and Email describe the
// instructor, not the class. Untyped members of the posted document are kept
// in Extra.
type Class struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	ClassName string             `json:"className" bson:"className"`
	Price     float64            `json:"price" bson:"price"`
	Seats     int                `json:"seats" bson:"seats"`
	Photo     string             `json:"photo" bson:"photo"`
	Status    ClassStatus        `json:"status" bson:"status"`
	Feedback  string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Extra     bson.M             `json:"-" bson:",inline"`
}

type classFields Class

var classKeys = jsonNames(reflect.TypeOf(Class{}))

func (c *Class) UnmarshalJSON(data []byte) error {
	var fields classFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, classKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	*c = Class(fields)
	return nil
}

func (c Class) MarshalJSON() ([]byte, error) {
	return mergeExtra(classFields(c), c.Extra)
}

// ClassUpdate carries the fields replaced by a full class update.
type ClassUpdate struct {
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email" bson:"email"`
	ClassName string  `json:"className" bson:"className"`
	Price     float64 `json:"price" bson:"price"`
	Seats     int     `json:"seats" bson:"seats"`
	Photo     string  `json:"photo" bson:"photo"`
}
