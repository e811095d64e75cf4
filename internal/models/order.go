package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unPaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Order is a class selection made by a student. Money moves from unPaid to
// paid exactly once; there is no reverse transition.
type Order struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	ClassID   string             `json:"classId" bson:"classId" validate:"required"`
	ClassName string             `json:"className,omitempty" bson:"className,omitempty"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Price     float64            `json:"price,omitempty" bson:"price,omitempty"`
	Money     PaymentStatus      `json:"money" bson:"money"`
}
