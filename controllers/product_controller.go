package controllers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"laptopstore/database"
	"laptopstore/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errInvalidCategoryFilter = errors.New("Invalid category ID")

// buildProductFilter translates the list query parameters into a Mongo
// filter: search is a case-insensitive substring match on name, category an
// exact reference match.
func buildProductFilter(search, category string) (bson.M, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	if category != "" {
		objID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			return nil, errInvalidCategoryFilter
		}
		filter["category"] = objID
	}
	return filter, nil
}

// productUpdateSet assembles the partial $set document for a product update.
// Omitted form fields are left untouched.
func productUpdateSet(name, price, category, description string) (bson.M, error) {
	update := bson.M{}
	if name != "" {
		update["name"] = name
	}
	if price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return nil, errors.New("Invalid price")
		}
		update["price"] = v
	}
	if category != "" {
		objID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			return nil, errInvalidCategoryFilter
		}
		update["category"] = objID
	}
	if description != "" {
		update["description"] = description
	}
	return update, nil
}

// uploadFilename keys a stored image by upload time, keeping the original
// extension. Collisions within the same millisecond are not handled.
func uploadFilename(original string, now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + filepath.Ext(original)
}

// productJSON renders a product with its category reference resolved to at
// least the category name. A dangling reference resolves to null.
func productJSON(ctx context.Context, p models.Product) gin.H {
	out := gin.H{
		"id":          p.ID.Hex(),
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"image":       p.Image,
		"category":    nil,
	}

	var category models.Category
	if err := database.CategoryCollection.FindOne(ctx, bson.M{"_id": p.Category}).Decode(&category); err == nil {
		out["category"] = gin.H{"id": category.ID.Hex(), "name": category.Name}
	}
	return out
}

func ListProducts(c *gin.Context) {
	filter, err := buildProductFilter(c.Query("search"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	resp := []gin.H{}
	for _, p := range products {
		resp = append(resp, productJSON(ctx, p))
	}

	c.JSON(http.StatusOK, resp)
}

func GetProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	err = database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, productJSON(ctx, product))
}

// saveProductImage writes the uploaded file under uploads/ and returns the
// public path recorded on the product. The file is never rolled back if the
// subsequent document write fails.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	filename := uploadFilename(file.Filename, time.Now())
	if err := c.SaveUploadedFile(file, filepath.Join("uploads", filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

func CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	priceStr := c.PostForm("price")
	categoryStr := c.PostForm("category")
	description := c.PostForm("description")

	if name == "" || priceStr == "" || categoryStr == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing product information"})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	// The category is stored as given; no check that it refers to an
	// existing category.
	categoryID, err := primitive.ObjectIDFromHex(categoryStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	imageURL, err := saveProductImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Price:       price,
		Category:    categoryID,
		Description: description,
		Image:       imageURL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.ProductCollection.InsertOne(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	update, err := productUpdateSet(c.PostForm("name"), c.PostForm("price"), c.PostForm("category"), c.PostForm("description"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := saveProductImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}
	if imageURL != "" {
		update["image"] = imageURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// An empty $set is rejected server-side; with nothing to change the
	// product is answered back as stored.
	if len(update) == 0 {
		var product models.Product
		err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = database.ProductCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The stored image file is left on disk.
	result, err := database.ProductCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": c.Param("id")})
}
