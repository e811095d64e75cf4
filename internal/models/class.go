package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStatus string

const (
	ClassPending ClassStatus = "pending"
	ClassActive  ClassStatus = "active"
)

// Class is a course offering. AvailableSeats counts the remaining capacity
// and is decremented atomically in the store, one seat per enrollment.
// The bson field names match the documents the frontend already reads.
type Class struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" validate:"required"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	Instructor     string             `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Email          string             `json:"email" bson:"email" validate:"required,email"`
	Price          float64            `json:"price" bson:"price"`
	AvailableSeats int                `json:"availableSeats" bson:"availableSeats"`
	Status         ClassStatus        `json:"status" bson:"status"`
	FeedBack       string             `json:"feedBack,omitempty" bson:"feedBack,omitempty"`
}
