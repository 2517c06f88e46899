package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func TestCreateReviewRecomputesMeanRating(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: productID, Title: "Denim Jacket"})
	reviews := newFakeReviews()
	svc := NewReviewService(reviews, products, newFakeUsers())

	ctx := context.Background()
	first := models.User{ID: primitive.NewObjectID()}
	second := models.User{ID: primitive.NewObjectID()}

	require.NoError(t, svc.Create(ctx, first, productID, 4, "good fit"))
	assert.Equal(t, 4.0, products.byID[productID].Rating)

	require.NoError(t, svc.Create(ctx, second, productID, 2, "color faded"))
	assert.Equal(t, 3.0, products.byID[productID].Rating)
}

func TestCreateReviewDuplicateLeavesRatingUnchanged(t *testing.T) {
	productID := primitive.NewObjectID()
	products := newFakeProducts(models.Product{ID: productID})
	reviews := newFakeReviews()
	svc := NewReviewService(reviews, products, newFakeUsers())

	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID()}

	require.NoError(t, svc.Create(ctx, user, productID, 5, "love it"))
	assert.Equal(t, 5.0, products.byID[productID].Rating)

	err := svc.Create(ctx, user, productID, 1, "changed my mind")
	assert.True(t, errors.Is(err, apperr.Conflict("")))
	assert.Equal(t, 5.0, products.byID[productID].Rating)
	assert.Len(t, reviews.reviews, 1)
}

func TestCreateReviewMissingProduct(t *testing.T) {
	svc := NewReviewService(newFakeReviews(), newFakeProducts(), newFakeUsers())

	err := svc.Create(context.Background(), models.User{ID: primitive.NewObjectID()}, primitive.NewObjectID(), 3, "")
	assert.True(t, errors.Is(err, apperr.NotFound("")))
}

func TestListReviewsAnnotatesReviewerName(t *testing.T) {
	productID := primitive.NewObjectID()
	reviewer := models.User{ID: primitive.NewObjectID(), Name: "Kiran"}
	deleted := models.User{ID: primitive.NewObjectID(), Name: "Gone"}

	products := newFakeProducts(models.Product{ID: productID})
	reviews := newFakeReviews()
	svc := NewReviewService(reviews, products, newFakeUsers(reviewer))

	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, reviewer, productID, 4, "nice"))
	require.NoError(t, svc.Create(ctx, deleted, productID, 2, "meh"))

	views, err := svc.ListForProduct(ctx, productID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Kiran", views[0].UserName)
	assert.Equal(t, 4, views[0].Rating)
	assert.Empty(t, views[1].UserName) // reviewer no longer exists
}
