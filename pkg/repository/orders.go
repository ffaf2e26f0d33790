package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/tableserve/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *MongoRepository) InsertOrder(ctx context.Context, order *models.Order) error {
	collection := m.database.Collection(ordersColl)

	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	if order.Status == "" {
		order.Status = models.StatusUndelivered
	}

	res, err := collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	collection := m.database.Collection(ordersColl)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (m *MongoRepository) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	collection := m.database.Collection(ordersColl)

	var order models.Order
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (m *MongoRepository) SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	collection := m.database.Collection(ordersColl)

	res, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
