package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNameExactCI(t *testing.T) {
	re := nameExactCI("Dell")
	if re.Pattern != "^Dell$" {
		t.Errorf("expected anchored pattern, got %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("expected case-insensitive options, got %q", re.Options)
	}
}

func TestNameExactCIQuotesMetacharacters(t *testing.T) {
	re := nameExactCI("C++ & .NET")
	if re.Pattern != `^C\+\+ & \.NET$` {
		t.Errorf("expected quoted pattern, got %q", re.Pattern)
	}
}

func TestGetCategoryRejectsMalformedID(t *testing.T) {
	r := gin.New()
	r.GET("/api/categories/:id", GetCategory)

	w := request(r, http.MethodGet, "/api/categories/not-a-hex-id")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateCategoryRequiresIdentity(t *testing.T) {
	r := gin.New()
	r.POST("/api/categories", CreateCategory)

	// No ?username= at all: rejected before any store access or mutation.
	w := postJSON(r, "/api/categories", `{"name":"Gaming"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDeleteCategoryRequiresIdentity(t *testing.T) {
	r := gin.New()
	r.DELETE("/api/categories/:id", DeleteCategory)

	w := request(r, http.MethodDelete, "/api/categories/68b1234567890abcdef12345")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
