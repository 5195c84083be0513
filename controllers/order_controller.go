package controllers

import (
	"context"
	"net/http"
	"time"

	"laptopstore/database"
	"laptopstore/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderTotal is the server-side reconciliation sum for an order.
func orderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"orderDate": -1})
	cursor, err := database.OrderCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var orders []models.Order = []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func ListUserOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"orderDate": -1})
	cursor, err := database.OrderCollection.Find(ctx, bson.M{"userId": c.Param("userId")}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	// Unlike the admin listing, zero orders here is a 404. Kept as-is; see
	// DESIGN.md.
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found for this user"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func CreateOrder(c *gin.Context) {
	var body struct {
		UserID        string             `json:"userId"`
		CustomerName  string             `json:"customerName"`
		Phone         string             `json:"phone"`
		Address       string             `json:"address"`
		PaymentMethod string             `json:"paymentMethod"`
		TotalAmount   float64            `json:"totalAmount"`
		Products      []models.OrderItem `json:"products"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.UserID == "" || body.CustomerName == "" || body.Phone == "" ||
		body.Address == "" || body.PaymentMethod == "" || len(body.Products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order information"})
		return
	}

	for _, item := range body.Products {
		if item.Name == "" || item.Price == 0 || item.Quantity == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Each product must have name, price and quantity"})
			return
		}
	}

	if orderTotal(body.Products) != body.TotalAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Total amount does not match"})
		return
	}

	order := models.Order{
		ID:            primitive.NewObjectID(),
		UserID:        body.UserID,
		CustomerName:  body.CustomerName,
		Phone:         body.Phone,
		Address:       body.Address,
		PaymentMethod: body.PaymentMethod,
		OrderDate:     time.Now(),
		TotalAmount:   body.TotalAmount,
		Products:      body.Products,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.OrderCollection.InsertOne(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func DeleteOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.OrderCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
