package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Address is a postal address embedded in users and orders.
type Address struct {
	Street  string `bson:"street,omitempty"  json:"street,omitempty"`
	City    string `bson:"city,omitempty"    json:"city,omitempty"`
	State   string `bson:"state,omitempty"   json:"state,omitempty"`
	Zip     string `bson:"zip,omitempty"     json:"zip,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// User is an account document. Password holds the bcrypt hash and is never
// serialised to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"id"`
	Name      string             `bson:"name"                json:"name"`
	Email     string             `bson:"email"               json:"email"`
	Password  string             `bson:"password"            json:"-"`
	Role      string             `bson:"role"                json:"role"`
	Phone     string             `bson:"phone,omitempty"     json:"phone,omitempty"`
	Addresses []Address          `bson:"address,omitempty"   json:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"           json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"           json:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// PublicUser is the safe view returned by auth endpoints.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips the credential fields.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
