package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The collection roots must serve on their canonical no-slash paths, not via
// a trailing-slash redirect. Both requests below are rejected by handler
// validation before any store access, so a redirect status would mean the
// route itself is wrong.
func TestCollectionRootsServeWithoutRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /api/orders: expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products?category=nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/products: expected 400, got %d", w.Code)
	}
}
