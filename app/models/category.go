package models

import (
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products. Categories are managed by seeders; products hold
// a reference to one.
type Category struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"            json:"id"`
	Name        string              `bson:"name"                     json:"name"`
	Slug        string              `bson:"slug"                     json:"slug"`
	Description string              `bson:"description,omitempty"    json:"description,omitempty"`
	Parent      *primitive.ObjectID `bson:"parentCategory,omitempty" json:"parentCategory,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"                json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"                json:"updatedAt"`
}

// Normalize regenerates the slug from the name. Must be called before every
// persist of a Category.
func (c *Category) Normalize() {
	c.Slug = Slugify(c.Name)
}

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
