// Package arena provides a generational object pool. Objects are stored in
// slots addressed by a Handle carrying the slot index and a generation
// counter; removing an object bumps the slot's generation, so handles to
// removed objects become stale and can never accidentally address a value
// that later reuses the slot.
package arena

// Handle identifies a value in an Arena. The zero Handle is valid only if
// it was returned by Insert; a stale Handle (its value removed) resolves
// to nothing.
type Handle struct {
	Index uint32
	Gen   uint32
}

type slot[T any] struct {
	value    T
	gen      uint32
	next     int32 // next free slot index, -1 terminates the free list
	occupied bool
}

// Arena is a generational pool of T, created with New or WithCapacity.
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead int32
	length   int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{freeHead: -1}
}

// WithCapacity creates an empty arena with room for cap values before the
// backing store grows.
func WithCapacity[T any](cap int) *Arena[T] {
	return &Arena[T]{
		slots:    make([]slot[T], 0, cap),
		freeHead: -1,
	}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.length
}

// Insert stores value and returns its handle. Freed slots are reused before
// the backing store grows.
func (a *Arena[T]) Insert(value T) Handle {
	if a.freeHead >= 0 {
		idx := a.freeHead
		s := &a.slots[idx]
		a.freeHead = s.next
		s.next = -1
		s.value = value
		s.occupied = true
		a.length++
		return Handle{Index: uint32(idx), Gen: s.gen}
	}

	a.slots = append(a.slots, slot[T]{value: value, next: -1, occupied: true})
	a.length++
	return Handle{Index: uint32(len(a.slots) - 1)}
}

// Get returns a pointer to the value for h, or nil if h is stale or was
// never issued. The pointer stays valid until the slot is removed or the
// backing store grows on a later Insert.
func (a *Arena[T]) Get(h Handle) *T {
	idx := int(h.Index)
	if idx >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.occupied || s.gen != h.Gen {
		return nil
	}
	return &s.value
}

// Remove deletes the value for h and returns it. The second return value is
// false if h is stale or was never issued. The slot's generation is bumped
// and the slot joins the free list for reuse.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	idx := int(h.Index)
	if idx >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[idx]
	if !s.occupied || s.gen != h.Gen {
		return zero, false
	}

	v := s.value
	s.value = zero
	s.occupied = false
	s.gen++
	s.next = a.freeHead
	a.freeHead = int32(idx)
	a.length--
	return v, true
}

// Range calls fn for every live value, in slot order. fn may mutate values
// through the pointer but must not insert or remove.
func (a *Arena[T]) Range(fn func(h Handle, v *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.occupied {
			fn(Handle{Index: uint32(i), Gen: s.gen}, &s.value)
		}
	}
}
