package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. The transition is one-way: Undelivered -> Delivered.
const (
	StatusUndelivered = "Undelivered"
	StatusDelivered   = "Delivered"
)

// CartLine is a product snapshot with a quantity. Prices are frozen at the
// moment the line enters the cart; later catalog edits do not touch it.
type CartLine struct {
	ProductID string  `bson:"_id" json:"_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	ImageURL  string  `bson:"imageUrl" json:"imageUrl"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Mobile      string             `bson:"mobile" json:"mobile"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	CartItems   []CartLine         `bson:"cartItems" json:"cartItems"`
	TableNumber int                `bson:"tableNumber" json:"tableNumber"`
	Date        time.Time          `bson:"date" json:"date"`
	Status      string             `bson:"status" json:"status"`
}
