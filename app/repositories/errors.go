package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors translated from driver errors so services never depend on
// mongo error types directly.
var (
	ErrNotFound  = errors.New("repositories: document not found")
	ErrDuplicate = errors.New("repositories: duplicate key")
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
