package catalogs

import (
	"fmt"
	"sync"
)

// Record is implemented by every catalog record type.
type Record interface {
	Lens | Camera | RecordingFormat | Rental
}

// Collection is a concurrent safe, insertion ordered set of records keyed by ID.
// Catalog order matters to callers (filters preserve it), so unlike a plain
// map the collection remembers the order records were added in.
type Collection[T Record] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	idOf  func(T) string
}

// CollectionOption defines a function that configures a Collection instance.
type CollectionOption[T Record] func(*Collection[T])

// WithCapacity sets the initial capacity of the collection.
func WithCapacity[T Record](capacity int) CollectionOption[T] {
	return func(c *Collection[T]) {
		c.order = make([]string, 0, capacity)
		c.items = make(map[string]T, capacity)
	}
}

// NewCollection creates an empty collection using idOf to key records.
func NewCollection[T Record](idOf func(T) string, opts ...CollectionOption[T]) *Collection[T] {
	c := &Collection[T]{
		items: make(map[string]T),
		idOf:  idOf,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewLenses creates a lens collection.
func NewLenses(lenses ...Lens) (*Collection[Lens], error) {
	c := NewCollection(func(l Lens) string { return l.ID }, WithCapacity[Lens](len(lenses)))
	return c, c.AddBatch(lenses)
}

// NewCameras creates a camera collection.
func NewCameras(cameras ...Camera) (*Collection[Camera], error) {
	c := NewCollection(func(cam Camera) string { return cam.ID }, WithCapacity[Camera](len(cameras)))
	return c, c.AddBatch(cameras)
}

// NewRecordingFormats creates a recording format collection.
func NewRecordingFormats(formats ...RecordingFormat) (*Collection[RecordingFormat], error) {
	c := NewCollection(func(f RecordingFormat) string { return string(f.ID) }, WithCapacity[RecordingFormat](len(formats)))
	return c, c.AddBatch(formats)
}

// NewRentals creates a rental collection.
func NewRentals(rentals ...Rental) (*Collection[Rental], error) {
	c := NewCollection(func(r Rental) string { return r.ID }, WithCapacity[Rental](len(rentals)))
	return c, c.AddBatch(rentals)
}

// Get returns a record by id and whether it exists.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	item, ok := c.items[id]
	c.mu.RUnlock()
	return item, ok
}

// Add adds a record, returning an error if its ID already exists.
func (c *Collection[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(item)
}

func (c *Collection[T]) addLocked(item T) error {
	id := c.idOf(item)
	if id == "" {
		return fmt.Errorf("record ID cannot be empty")
	}
	if _, exists := c.items[id]; exists {
		return fmt.Errorf("record with ID %s already exists", id)
	}
	c.items[id] = item
	c.order = append(c.order, id)
	return nil
}

// AddBatch adds records in order, stopping at the first duplicate or empty ID.
func (c *Collection[T]) AddBatch(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range items {
		if err := c.addLocked(item); err != nil {
			return err
		}
	}
	return nil
}

// Exists checks if a record exists without returning it.
func (c *Collection[T]) Exists(id string) bool {
	c.mu.RLock()
	_, exists := c.items[id]
	c.mu.RUnlock()
	return exists
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	length := len(c.order)
	c.mu.RUnlock()
	return length
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.order))
	for i, id := range c.order {
		items[i] = c.items[id]
	}
	return items
}
