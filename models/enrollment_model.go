package models

import (
	"encoding/json"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment records that the student identified by Email enrolled in ClassID.
// Any other members of the posted document are kept in Extra and stored as is.
type Enrollment struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email" validate:"required,email"`
	Name            string             `json:"name" bson:"name"`
	ClassID         string             `json:"classId" bson:"classId" validate:"required"`
	ClassName       string             `json:"className" bson:"className"`
	InstructorName  string             `json:"instructorName" bson:"instructorName"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	Price           float64            `json:"price" bson:"price"`
	Photo           string             `json:"photo" bson:"photo"`
	Extra           bson.M             `json:"-" bson:",inline"`
}

type enrollmentFields Enrollment

var enrollmentKeys = jsonNames(reflect.TypeOf(Enrollment{}))

func (e *Enrollment) UnmarshalJSON(data []byte) error {
	var fields enrollmentFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, enrollmentKeys)
	if err != nil {
		return err
	}
	fields.Extra = extra
	*e = Enrollment(fields)
	return nil
}

func (e Enrollment) MarshalJSON() ([]byte, error) {
	return mergeExtra(enrollmentFields(e), e.Extra)
}
