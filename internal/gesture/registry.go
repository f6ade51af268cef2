package gesture

import "sync"

// Registry maps host identities to carousel instances, so initializing the
// same host twice yields the same carousel.
type Registry[K comparable, T any] struct {
	mu        sync.Mutex
	instances map[K]*Carousel[T]
}

// NewRegistry creates an empty registry
func NewRegistry[K comparable, T any]() *Registry[K, T] {
	return &Registry[K, T]{instances: make(map[K]*Carousel[T])}
}

// LookupOrCreate returns the carousel registered for key, creating it with
// create when there is none. created reports whether create ran.
func (r *Registry[K, T]) LookupOrCreate(key K, create func() (*Carousel[T], error)) (c *Carousel[T], created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.instances[key]; ok && !existing.Disposed() {
		return existing, false, nil
	}

	c, err = create()
	if err != nil {
		return nil, false, err
	}
	r.instances[key] = c
	return c, true, nil
}

// Lookup returns the carousel registered for key
func (r *Registry[K, T]) Lookup(key K) (*Carousel[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.instances[key]
	if !ok || c.Disposed() {
		return nil, false
	}
	return c, true
}

// Remove disposes the carousel for key and forgets it, so the key can be
// initialized again. It reports whether anything was registered.
func (r *Registry[K, T]) Remove(key K) bool {
	r.mu.Lock()
	c, ok := r.instances[key]
	delete(r.instances, key)
	r.mu.Unlock()

	if ok {
		c.Dispose()
	}
	return ok
}

// Len returns the number of registered carousels
func (r *Registry[K, T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Close disposes and forgets every carousel
func (r *Registry[K, T]) Close() {
	r.mu.Lock()
	instances := r.instances
	r.instances = make(map[K]*Carousel[T])
	r.mu.Unlock()

	for _, c := range instances {
		c.Dispose()
	}
}
