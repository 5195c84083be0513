package controllers

import (
	"net/http"
	"testing"

	"laptopstore/models"

	"github.com/gin-gonic/gin"
)

func TestOrderTotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Dell XPS 13", Price: 10, Quantity: 2},
		{Name: "Mouse", Price: 5, Quantity: 1},
	}
	if got := orderTotal(items); got != 25 {
		t.Errorf("expected total 25, got %v", got)
	}
	if got := orderTotal(nil); got != 0 {
		t.Errorf("expected total 0 for no items, got %v", got)
	}
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	r := gin.New()
	r.POST("/api/orders", CreateOrder)

	cases := []string{
		`{}`,
		`{"userId":"u1","customerName":"An","phone":"0123","address":"HN"}`,
		`{"userId":"u1","customerName":"An","phone":"0123","address":"HN","paymentMethod":"cod","products":[]}`,
	}
	for _, body := range cases {
		w := postJSON(r, "/api/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestCreateOrderRejectsIncompleteLineItem(t *testing.T) {
	r := gin.New()
	r.POST("/api/orders", CreateOrder)

	body := `{"userId":"u1","customerName":"An","phone":"0123","address":"HN","paymentMethod":"cod",
		"totalAmount":20,"products":[{"name":"Dell XPS 13","price":10}]}`
	w := postJSON(r, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for line item without quantity, got %d", w.Code)
	}
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	r := gin.New()
	r.POST("/api/orders", CreateOrder)

	// 10*2 + 5*1 = 25, client claims 24.
	body := `{"userId":"u1","customerName":"An","phone":"0123","address":"HN","paymentMethod":"cod",
		"totalAmount":24,"products":[{"name":"Dell XPS 13","price":10,"quantity":2},{"name":"Mouse","price":5,"quantity":1}]}`
	w := postJSON(r, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for mismatched total, got %d", w.Code)
	}
}

func TestDeleteOrderRejectsMalformedID(t *testing.T) {
	r := gin.New()
	r.DELETE("/api/orders/:id", DeleteOrder)

	w := request(r, http.MethodDelete, "/api/orders/not-a-hex-id")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
