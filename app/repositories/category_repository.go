package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// CategoryRepository handles the categories collection.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection("categories")}
}

// FindByID looks up a category by id.
func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var category models.Category
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	return category, translate(err)
}

// FindAll returns every category.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

// Create persists a new category. The caller normalizes it first.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return translate(err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
