// Package seeder tracks data seeders. Seeders are idempotent: each one
// checks for its own data before inserting, so running `vastra seed` twice
// is safe.
//
// Define a seeder in database/seeders and register it from init():
//
//	func init() {
//	    seeder.Register("initial", &InitialSeeder{})
//	}
package seeder

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
)

// Seeder inserts fixture or bootstrap data.
type Seeder interface {
	Run(ctx context.Context, db *mongo.Database) error
}

type entry struct {
	name string
	s    Seeder
}

var (
	mu      sync.Mutex
	entries []entry
)

// Register adds a seeder to the global registry. Seeders run in
// registration order.
func Register(name string, s Seeder) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{name: name, s: s})
}

// RunAll executes every registered seeder against db.
func RunAll(ctx context.Context, db *mongo.Database) error {
	mu.Lock()
	current := make([]entry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		fmt.Printf("  • Seeding: %s … ", e.name)
		if err := e.s.Run(ctx, db); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
