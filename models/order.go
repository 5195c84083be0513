package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is immutable once placed; there is no update path, only delete.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"userId" json:"userId"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	Phone         string             `bson:"phone" json:"phone"`
	Address       string             `bson:"address" json:"address"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	OrderDate     time.Time          `bson:"orderDate" json:"orderDate"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	Products      []OrderItem        `bson:"products" json:"products"`
}

type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}
