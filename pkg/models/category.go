package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products on the landing page.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
}
