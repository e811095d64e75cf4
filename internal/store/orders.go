package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/models"
)

type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(client *mongo.Client, dbName string) *OrderStore {
	return &OrderStore{col: client.Database(dbName).Collection("orderCourse")}
}

func (s *OrderStore) Insert(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, order)
}

// ByEmailAndPayment lists a purchaser's orders filtered on the payment
// marker.
func (s *OrderStore) ByEmailAndPayment(ctx context.Context, email string, money models.PaymentStatus) ([]models.Order, error) {
	cursor, err := s.col.Find(ctx, bson.M{"email": email, "money": money})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty result serializes as [] not null.
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID returns (nil, nil) when the order does not exist.
func (s *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid unconditionally sets the payment marker to paid. Applying it to
// an already-paid order is a no-op on the document.
func (s *OrderStore) MarkPaid(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"money": models.PaymentPaid}})
}

func (s *OrderStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.col.DeleteOne(ctx, bson.M{"_id": objID})
}
