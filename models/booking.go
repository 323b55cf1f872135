package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a confirmed reservation.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Patient         string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	TreatmentName   string             `bson:"treatmentName" json:"treatmentName"`
	TreatmentID     string             `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"` // surrogate key of the offering, when the client sent it
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Slot            string             `bson:"slot" json:"slot"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid" json:"paid"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the admission input.
type BookingRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Patient         string  `json:"patient"`
	Phone           string  `json:"phone"`
	TreatmentName   string  `json:"treatmentName" binding:"required"`
	TreatmentID     string  `json:"treatmentId"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Slot            string  `json:"slot" binding:"required"`
	Price           float64 `json:"price"`
}

// BookingResult is the admission outcome. A rejected request carries Message.
type BookingResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

// BookingPatch is the set of fields payment finalization may change.
type BookingPatch struct {
	Paid          *bool   `bson:"paid,omitempty"`
	TransactionID *string `bson:"transactionId,omitempty"`
}
