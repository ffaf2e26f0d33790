package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin credentials are stored and compared as plaintext, matching the
// deployed system. Known weakness, kept for behavioral parity.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	AdminID  string             `bson:"adminId" json:"adminId"`
	Password string             `bson:"password" json:"-"`
}
