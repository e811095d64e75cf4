package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
	RoleStudent    UserRole = "student"
	RoleUnset      UserRole = ""
)

// User is a registered member of the platform. Role stays empty until an
// admin promotes the account; self-registration never sets it.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     UserRole           `json:"role,omitempty" bson:"role,omitempty"`
}
