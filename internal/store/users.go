// Package store holds the per-collection Mongo data access. Every mutation
// here is a single-document operation and relies on the server's
// per-document atomicity; there are no cross-document transactions, so an
// order insert and the matching seat decrement can still diverge on a crash
// between the two calls.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/models"
)

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(client *mongo.Client, dbName string) *UserStore {
	return &UserStore{col: client.Database(dbName).Collection("users")}
}

// FindByEmail returns (nil, nil) when no user with that email exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveRole looks up the current role for an email. A missing user
// resolves to the unset role, which never passes an admin check.
func (s *UserStore) ResolveRole(ctx context.Context, email string) (models.UserRole, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return models.RoleUnset, err
	}
	if user == nil {
		return models.RoleUnset, nil
	}
	return user.Role, nil
}

func (s *UserStore) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, user)
}

func (s *UserStore) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty collection serializes as [] not null.
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Instructors(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{"role": models.RoleInstructor})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) SetRole(ctx context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": role}})
}

func (s *UserStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": objID})
}
