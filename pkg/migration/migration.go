// Package migration tracks schema migrations for MongoDB. A "schema" change
// here means index creation: unique constraints the application relies on
// (one review per user+product, unique emails) must live in the store to be
// race-safe, so they are applied by named, recorded migrations rather than
// ad hoc at boot.
//
// Define a migration in database/migrations and register it from init():
//
//	func init() {
//	    migration.Register("20260115000000_create_review_indexes", &CreateReviewIndexes{})
//	}
//
// Then run via CLI: vastra migrate
package migration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Migration applies or reverts one schema change.
type Migration interface {
	Up(ctx context.Context, db *mongo.Database) error
	Down(ctx context.Context, db *mongo.Database) error
}

type entry struct {
	name string
	m    Migration
}

var (
	mu      sync.Mutex
	entries []entry
)

// Register adds a migration to the global registry.
// Call this from init() in your migration files.
func Register(name string, m Migration) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{name: name, m: m})
}

// record is one row of the migrations collection.
type record struct {
	Name      string    `bson:"name"`
	Batch     int       `bson:"batch"`
	AppliedAt time.Time `bson:"appliedAt"`
}

// Runner executes registered migrations against one database.
type Runner struct {
	db *mongo.Database
}

// New creates a Runner bound to db.
func New(db *mongo.Database) *Runner {
	return &Runner{db: db}
}

func (r *Runner) collection() *mongo.Collection {
	return r.db.Collection("migrations")
}

func (r *Runner) applied(ctx context.Context) (map[string]record, int, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("migration: read applied: %w", err)
	}
	defer cursor.Close(ctx)

	var records []record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("migration: decode applied: %w", err)
	}

	byName := make(map[string]record, len(records))
	lastBatch := 0
	for _, rec := range records {
		byName[rec.Name] = rec
		if rec.Batch > lastBatch {
			lastBatch = rec.Batch
		}
	}
	return byName, lastBatch, nil
}

func sortedEntries() []entry {
	mu.Lock()
	current := make([]entry, len(entries))
	copy(current, entries)
	mu.Unlock()

	sort.Slice(current, func(i, j int) bool { return current[i].name < current[j].name })
	return current
}

// Run applies every pending migration in name order as one batch.
func (r *Runner) Run(ctx context.Context) error {
	byName, lastBatch, err := r.applied(ctx)
	if err != nil {
		return err
	}

	batch := lastBatch + 1
	ran := 0
	for _, e := range sortedEntries() {
		if _, done := byName[e.name]; done {
			continue
		}

		fmt.Printf("  • Migrating: %s … ", e.name)
		if err := e.m.Up(ctx, r.db); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("migration %q: %w", e.name, err)
		}

		rec := record{Name: e.name, Batch: batch, AppliedAt: time.Now()}
		if _, err := r.collection().InsertOne(ctx, rec); err != nil {
			return fmt.Errorf("migration %q: record: %w", e.name, err)
		}
		fmt.Println("done")
		ran++
	}

	if ran == 0 {
		fmt.Println("  (nothing to migrate)")
	}
	return nil
}

// Rollback reverts the last batch in reverse name order.
func (r *Runner) Rollback(ctx context.Context) error {
	byName, lastBatch, err := r.applied(ctx)
	if err != nil {
		return err
	}
	if lastBatch == 0 {
		fmt.Println("  (nothing to rollback)")
		return nil
	}

	all := sortedEntries()
	for i := len(all) - 1; i >= 0; i-- {
		e := all[i]
		rec, done := byName[e.name]
		if !done || rec.Batch != lastBatch {
			continue
		}

		fmt.Printf("  • Rolling back: %s … ", e.name)
		if err := e.m.Down(ctx, r.db); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("rollback %q: %w", e.name, err)
		}
		if _, err := r.collection().DeleteOne(ctx, bson.M{"name": e.name}); err != nil {
			return fmt.Errorf("rollback %q: unrecord: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}

// Status prints every registered migration and whether it has been applied.
func (r *Runner) Status(ctx context.Context) error {
	byName, _, err := r.applied(ctx)
	if err != nil {
		return err
	}

	for _, e := range sortedEntries() {
		state := "pending"
		if rec, done := byName[e.name]; done {
			state = fmt.Sprintf("applied (batch %d)", rec.Batch)
		}
		fmt.Printf("  %-55s %s\n", e.name, state)
	}
	return nil
}
