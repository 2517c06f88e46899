package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the single source of truth for stock, sales and rating.
// Rating and InStock are derived fields: Rating is recomputed by the review
// flow, InStock by Normalize.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"            json:"id"`
	Title          string             `bson:"title"                    json:"title"`
	Description    string             `bson:"description"              json:"description"`
	Price          float64            `bson:"price"                    json:"price"`
	OldPrice       float64            `bson:"oldPrice,omitempty"       json:"oldPrice,omitempty"`
	Rating         float64            `bson:"rating"                   json:"rating"`
	Category       primitive.ObjectID `bson:"category"                 json:"category"`
	Sales          int64              `bson:"sales"                    json:"sales"`
	Images         []string           `bson:"images"                   json:"images"`
	Colors         []string           `bson:"colors,omitempty"         json:"colors,omitempty"`
	OfferExpiry    *time.Time         `bson:"offerExpiry,omitempty"    json:"offerExpiry,omitempty"`
	StockQuantity  int64              `bson:"stockQuantity"            json:"stockQuantity"`
	InStock        bool               `bson:"inStock"                  json:"inStock"`
	AdditionalInfo []string           `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"                json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"                json:"updatedAt"`
}

// Normalize recomputes the derived InStock flag. Must be called before every
// full-document persist of a Product.
func (p *Product) Normalize() {
	p.InStock = p.StockQuantity > 0
}

// FirstImage returns the product's first image, or "" when it has none.
// Carts snapshot this for display.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
