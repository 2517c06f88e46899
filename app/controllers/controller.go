// Package controllers holds the HTTP handlers. Controllers bind and
// validate input, call a service, and render the uniform JSON envelope;
// they contain no business rules of their own.
package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
)

// pathID extracts and parses an ObjectID path parameter.
func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid " + name)
	}
	return id, nil
}

// currentUser returns the authenticated user. Handlers reached through the
// Auth middleware always have one; ok is false only on a wiring mistake.
func currentUser(r *http.Request) (models.User, bool) {
	return middleware.UserFromCtx(r.Context())
}
