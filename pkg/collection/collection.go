// Package collection provides generic, functional-style helpers for slices.
//
// All functions work with Go generics (go 1.21+).
//
// Usage:
//
//	ids := collection.Map(items, func(i models.OrderItem) primitive.ObjectID { return i.ProductID })
//	total := collection.Reduce(reviews, 0, func(acc int, r models.Review) int { return acc + r.Rating })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// Reduce folds s into a single value starting from init.
func Reduce[T, R any](s []T, init R, fn func(R, T) R) R {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// KeyBy indexes s into a map keyed by the string returned by fn.
// Later elements overwrite earlier ones with the same key.
func KeyBy[T any](s []T, fn func(T) string) map[string]T {
	out := make(map[string]T, len(s))
	for _, v := range s {
		out[fn(v)] = v
	}
	return out
}
