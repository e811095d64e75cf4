package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Monirul480/Language-club-serversite/internal/models"
)

type ClassStore struct {
	col *mongo.Collection
}

func NewClassStore(client *mongo.Client, dbName string) *ClassStore {
	return &ClassStore{col: client.Database(dbName).Collection("allClass")}
}

func (s *ClassStore) Insert(ctx context.Context, class models.Class) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, class)
}

// All returns every class ordered by remaining seats ascending, so classes
// closest to full surface first.
func (s *ClassStore) All(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{})
}

// Active returns only active classes, same scarcity-first ordering.
func (s *ClassStore) Active(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{"status": models.ClassActive})
}

func (s *ClassStore) ByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *ClassStore) find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	opts := options.Find().SetSort(bson.D{{Key: "availableSeats", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Start non-nil so an empty collection serializes as [] not null,
	// matching what the frontend's .map expects.
	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// DecrementSeat atomically takes one seat off the class. The decrement is
// unconditional: nothing stops availableSeats from going below zero when
// enrollment outruns capacity. Known limitation, kept to match the
// deployed behavior.
func (s *ClassStore) DecrementSeat(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"availableSeats": -1}})
}

func (s *ClassStore) SetStatus(ctx context.Context, id string, status models.ClassStatus) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}})
}

// SetFeedback upserts, creating the feedBack field (or the document) when
// absent.
func (s *ClassStore) SetFeedback(ctx context.Context, id string, text string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	opts := options.Update().SetUpsert(true)
	return s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"feedBack": text}}, opts)
}

func (s *ClassStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": objID})
}
