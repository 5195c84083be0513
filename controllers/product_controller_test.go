package controllers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilterEmpty(t *testing.T) {
	filter, err := buildProductFilter("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}
}

func TestBuildProductFilterSearchQuotesPattern(t *testing.T) {
	filter, err := buildProductFilter("c++ laptop", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	re, ok := filter["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected a regex on name, got %T", filter["name"])
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive match, got options %q", re.Options)
	}
	if !strings.Contains(re.Pattern, `c\+\+`) {
		t.Errorf("expected quoted metacharacters, got pattern %q", re.Pattern)
	}
}

func TestBuildProductFilterCategory(t *testing.T) {
	id := primitive.NewObjectID()
	filter, err := buildProductFilter("", id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter["category"] != id {
		t.Errorf("expected category %v, got %v", id, filter["category"])
	}

	if _, err := buildProductFilter("", "not-a-hex-id"); err == nil {
		t.Error("expected error for malformed category id")
	}
}

func TestProductUpdateSet(t *testing.T) {
	// No fields supplied means nothing to $set; the handler must not send
	// an empty update to the server.
	set, err := productUpdateSet("", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %v", set)
	}

	id := primitive.NewObjectID()
	set, err = productUpdateSet("Dell XPS 13", "1200", id.Hex(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("expected three fields, got %v", set)
	}
	if set["price"] != 1200.0 || set["category"] != id {
		t.Errorf("unexpected set %v", set)
	}

	if _, err := productUpdateSet("", "not-a-number", "", ""); err == nil {
		t.Error("expected error for malformed price")
	}
	if _, err := productUpdateSet("", "", "not-a-hex-id", ""); err == nil {
		t.Error("expected error for malformed category id")
	}
}

func TestUploadFilenameKeepsExtension(t *testing.T) {
	now := time.UnixMilli(1756700000000)

	if got := uploadFilename("laptop.png", now); got != "1756700000000.png" {
		t.Errorf("unexpected filename %q", got)
	}
	if got := uploadFilename("no-extension", now); got != "1756700000000" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestListProductsRejectsMalformedCategory(t *testing.T) {
	r := gin.New()
	r.GET("/api/products", ListProducts)

	w := request(r, http.MethodGet, "/api/products?category=nope")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetProductMalformedIDReadsAsAbsent(t *testing.T) {
	r := gin.New()
	r.GET("/api/products/:id", GetProduct)

	w := request(r, http.MethodGet, "/api/products/not-a-hex-id")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestCreateProductRejectsMissingFields(t *testing.T) {
	r := gin.New()
	r.POST("/api/products", CreateProduct)

	req, _ := http.NewRequest(http.MethodPost, "/api/products", strings.NewReader("name=Dell+XPS+13&price=1200"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := newRecorder(r, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
