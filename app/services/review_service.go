package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/event"
)

// ReviewStore is the slice of the review repository the review service
// needs.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
	AverageForProduct(ctx context.Context, productID primitive.ObjectID) (float64, error)
}

// ReviewProducts covers the product reads and rating writes of the review
// flow.
type ReviewProducts interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	SetRating(ctx context.Context, id primitive.ObjectID, rating float64) error
}

// ReviewUsers resolves reviewer names for listings.
type ReviewUsers interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// ReviewView is a review annotated with the reviewer's display name.
type ReviewView struct {
	models.Review
	UserName string `json:"userName,omitempty"`
}

// ReviewService owns review creation and the product rating aggregate.
type ReviewService struct {
	reviews  ReviewStore
	products ReviewProducts
	users    ReviewUsers
}

func NewReviewService(reviews ReviewStore, products ReviewProducts, users ReviewUsers) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

// Create stores a review and recomputes the product's rating as the mean
// over all of its reviews. One review per user and product; the unique index
// makes this hold under concurrent requests too.
func (s *ReviewService) Create(ctx context.Context, user models.User, productID primitive.ObjectID, rating int, comment string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperr.NotFound("Product not found")
		}
		return fmt.Errorf("create review: lookup product: %w", err)
	}

	review := models.Review{
		UserID:    user.ID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, &review); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return apperr.Conflict("You have already reviewed this product")
		}
		return fmt.Errorf("create review: %w", err)
	}

	average, err := s.reviews.AverageForProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("create review: recompute rating: %w", err)
	}
	if err := s.products.SetRating(ctx, productID, average); err != nil {
		return fmt.Errorf("create review: store rating: %w", err)
	}

	event.Fire("review.created", review)
	return nil
}

// ListForProduct returns a product's reviews in insertion order, each with
// the reviewer's name resolved. A deleted reviewer leaves the name empty.
func (s *ReviewService) ListForProduct(ctx context.Context, productID primitive.ObjectID) ([]ReviewView, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, fmt.Errorf("list reviews: lookup product: %w", err)
	}

	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	names := map[primitive.ObjectID]string{}
	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		name, seen := names[review.UserID]
		if !seen {
			if reviewer, err := s.users.FindByID(ctx, review.UserID); err == nil {
				name = reviewer.Name
			}
			names[review.UserID] = name
		}
		views = append(views, ReviewView{Review: review, UserName: name})
	}
	return views, nil
}
