package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"laptopstore/database"
	"laptopstore/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cart mutations are read-modify-write over a single document, so they are
// serialized per userId in-process. Two concurrent adds for the same user
// would otherwise read the same prior state and lose one update. This covers
// a single instance only; multi-instance deployments would need a Mongo-side
// atomic update instead.
var userLocks = struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}{m: make(map[string]*sync.Mutex)}

func lockUser(userID string) *sync.Mutex {
	userLocks.mu.Lock()
	defer userLocks.mu.Unlock()

	l, ok := userLocks.m[userID]
	if !ok {
		l = &sync.Mutex{}
		userLocks.m[userID] = l
	}
	return l
}

// mergeCartItem adds item to the line items: an existing entry for the same
// product has its quantity incremented, anything else is appended.
func mergeCartItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// setCartQuantity sets (not increments) the quantity of the matching line
// item. Reports false when the product is not in the cart.
func setCartQuantity(items []models.CartItem, productID primitive.ObjectID, quantity int) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return items, true
		}
	}
	return items, false
}

// dropCartItem filters the matching line item out. A productID that is not
// in the cart (or is not even a valid id) leaves the items unchanged.
func dropCartItem(items []models.CartItem, productID string) []models.CartItem {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID.Hex() != productID {
			kept = append(kept, item)
		}
	}
	return kept
}

func GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.CartCollection.FindOne(ctx, bson.M{"userId": c.Param("userId")}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		// No cart yet reads as an empty one, never as an error.
		c.JSON(http.StatusOK, gin.H{"products": []models.CartItem{}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

func AddToCart(c *gin.Context) {
	userID := c.Param("userId")

	var body struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
		Image     string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.ProductID == "" || body.Name == "" || body.Price == 0 || body.Quantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product information"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	item := models.CartItem{
		ProductID: productID,
		Name:      body.Name,
		Price:     body.Price,
		Quantity:  body.Quantity,
		Image:     body.Image,
	}

	lock := lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err = database.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Products:  []models.CartItem{item},
			UpdatedAt: time.Now(),
		}
		if _, err := database.CartCollection.InsertOne(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	cart.Products = mergeCartItem(cart.Products, item)
	cart.UpdatedAt = time.Now()

	_, err = database.CartCollection.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{
		"$set": bson.M{"products": cart.Products, "updatedAt": cart.UpdatedAt},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusCreated, cart)
}

func UpdateCartItem(c *gin.Context) {
	userID := c.Param("userId")

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ProductID == "" || body.Quantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing update information"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	lock := lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err = database.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	products, ok := setCartQuantity(cart.Products, productID, body.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}
	cart.Products = products
	cart.UpdatedAt = time.Now()

	_, err = database.CartCollection.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{
		"$set": bson.M{"products": cart.Products, "updatedAt": cart.UpdatedAt},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cart)
}

func RemoveFromCart(c *gin.Context) {
	userID := c.Param("userId")

	lock := lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	cart.Products = dropCartItem(cart.Products, c.Param("productId"))
	cart.UpdatedAt = time.Now()

	_, err = database.CartCollection.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{
		"$set": bson.M{"products": cart.Products, "updatedAt": cart.UpdatedAt},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "cart": cart})
}

func ClearCart(c *gin.Context) {
	lock := lockUser(c.Param("userId"))
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Idempotent: clearing a cart that does not exist still succeeds.
	_, err := database.CartCollection.DeleteOne(ctx, bson.M{"userId": c.Param("userId")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
