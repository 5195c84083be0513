package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is keyed 1:1 by userId and created lazily on first add. Line items
// hold a snapshot of the product at add-time; later product edits do not
// touch existing carts.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Products  []CartItem         `bson:"products" json:"products"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Image     string             `bson:"image,omitempty" json:"image"`
}
