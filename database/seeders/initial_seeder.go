// Package seeders holds the bootstrap data: the admin account and a small
// demo catalog.
package seeders

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/seeder"
)

func init() {
	seeder.Register("admin_user", &AdminUserSeeder{})
	seeder.Register("catalog", &CatalogSeeder{})
}

// AdminUserSeeder creates the admin account. Admins are never created
// through the registration endpoint, only seeded.
type AdminUserSeeder struct{}

func (AdminUserSeeder) Run(ctx context.Context, db *mongo.Database) error {
	users := repositories.NewUserRepository(db)

	email := config.Get("ADMIN_EMAIL", "admin@vastra.local")
	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return users.Create(ctx, &models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	})
}

// CatalogSeeder creates a few categories and demo products so a fresh
// install has something to browse.
type CatalogSeeder struct{}

func (CatalogSeeder) Run(ctx context.Context, db *mongo.Database) error {
	categories := repositories.NewCategoryRepository(db)
	products := repositories.NewProductRepository(db)

	existing, err := categories.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	seedCategories := []models.Category{
		{Name: "Men's Wear", Description: "Clothing for men"},
		{Name: "Women's Wear", Description: "Clothing for women"},
		{Name: "Accessories", Description: "Bags, belts and more"},
	}
	for i := range seedCategories {
		c := &seedCategories[i]
		c.Normalize()
		if err := categories.Create(ctx, c); err != nil {
			return err
		}
	}

	seedProducts := []models.Product{
		{
			Title:         "Linen Kurta",
			Description:   "Breathable full-sleeve linen kurta",
			Price:         49.99,
			OldPrice:      59.99,
			Category:      seedCategories[0].ID,
			Images:        []string{"linen-kurta-front.jpg", "linen-kurta-back.jpg"},
			Colors:        []string{"white", "beige"},
			StockQuantity: 40,
		},
		{
			Title:         "Silk Scarf",
			Description:   "Hand-printed silk scarf",
			Price:         24.50,
			Category:      seedCategories[2].ID,
			Images:        []string{"silk-scarf.jpg"},
			Colors:        []string{"red", "navy"},
			StockQuantity: 120,
		},
		{
			Title:         "Denim Jacket",
			Description:   "Classic fit denim jacket",
			Price:         89.00,
			Category:      seedCategories[1].ID,
			Images:        []string{"denim-jacket.jpg"},
			StockQuantity: 15,
		},
	}
	for i := range seedProducts {
		p := &seedProducts[i]
		p.Normalize()
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
