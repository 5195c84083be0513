package controllers

import (
	"context"
	"net/http"
	"testing"
)

func TestCheckAdminMissingIdentity(t *testing.T) {
	// An empty identity short-circuits before the store is consulted.
	user, status, msg := checkAdmin(context.Background(), "")
	if user != nil {
		t.Error("expected no user")
	}
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg == "" {
		t.Error("expected an error message")
	}
}
