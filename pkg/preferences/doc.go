// Package preferences manages the user's favorite lenses and the bounded
// comparison set.
//
// Every mutation computes the next set, persists it through the Store and
// only then replaces the in-memory set. A failed save leaves the manager
// exactly as it was, so a mutation that returns nil has been persisted.
// Each set has its own lock, held across the store call, so mutations of
// one set are serialized while the other set stays available.
//
// The comparison set never holds more than constants.MaxComparisonItems
// members. Adding beyond that returns errors.ErrMaxComparisonItemsReached.
package preferences
