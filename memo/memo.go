package memo

// Cell caches a lazily computed value. A cell is either stale or fresh;
// Get recomputes only when stale and memoizes the result until the next
// Invalidate. Cells assume a single writer and are not safe for
// concurrent use.
type Cell[T any] struct {
	value T
	fresh bool
}

// Get returns the cached value, recomputing it with compute when the
// cell is stale.
func (c *Cell[T]) Get(compute func() T) T {
	if !c.fresh {
		c.value = compute()
		c.fresh = true
	}
	return c.value
}

// Invalidate marks the cell stale so the next Get recomputes.
func (c *Cell[T]) Invalidate() {
	c.fresh = false
}

// Fresh reports whether the cell currently holds a memoized value.
func (c *Cell[T]) Fresh() bool {
	return c.fresh
}
