package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
	Category primitive.ObjectID `bson:"category" json:"category"`
	// Available defaults to true; unavailable products stay listed but
	// cannot be added to a cart.
	Available bool `bson:"available" json:"available"`
}
