package controllers

import (
	"context"
	"net/http"

	"laptopstore/database"
	"laptopstore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// checkAdmin resolves a client-supplied username to an admin verdict. There is
// no session or token, so every privileged endpoint re-runs this lookup with
// the identity passed as a query parameter. Returns the user on success, or
// the HTTP status and message to respond with.
func checkAdmin(ctx context.Context, username string) (*models.User, int, string) {
	if username == "" {
		return nil, http.StatusBadRequest, "Missing username"
	}

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, http.StatusNotFound, "User not found"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, "Failed to check admin role"
	}
	if user.Role != "admin" {
		return nil, http.StatusForbidden, "Access denied. Admin only."
	}
	return &user, http.StatusOK, ""
}
