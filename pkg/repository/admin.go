package repository

import (
	"context"
	"errors"

	"github.com/example/tableserve/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindAdmin performs the plaintext equality lookup the admin gate is built
// on: both fields go straight into the filter, no hashing.
func (m *MongoRepository) FindAdmin(ctx context.Context, adminID, password string) (bool, error) {
	collection := m.database.Collection(adminsColl)

	var admin models.Admin
	err := collection.FindOne(ctx, bson.M{"adminId": adminID, "password": password}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
