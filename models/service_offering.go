package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceOffering is a bookable treatment with its fixed daily slot template.
type ServiceOffering struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name" binding:"required"`
	Price float64            `bson:"price" json:"price" binding:"required,gt=0"`
	Slots []string           `bson:"slots" json:"slots"` // time-of-day labels in template order, e.g. "08.00 AM - 08.30 AM"
}

// ServiceName is the projection served by the speciality listing.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
