// Package observe holds a piece of state owned by one component and lets
// other components subscribe to its changes.
package observe

import "sync"

// Value guards a state value of type T. Readers and subscribers always get a
// copy produced by the clone function, never the stored value itself.
type Value[T any] struct {
	mu     sync.Mutex
	state  T
	clone  func(T) T
	subs   map[int]func(T)
	nextID int
}

// NewValue creates a Value holding initial. clone may be nil for types
// without reference fields.
func NewValue[T any](initial T, clone func(T) T) *Value[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Value[T]{
		state: initial,
		clone: clone,
		subs:  make(map[int]func(T)),
	}
}

// Get returns a copy of the current state.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.clone(v.state)
}

// Update applies fn to the state under the lock, then notifies subscribers
// with a copy of the result. Subscribers run outside the lock.
func (v *Value[T]) Update(fn func(*T)) T {
	v.mu.Lock()
	fn(&v.state)
	snapshot := v.clone(v.state)
	subs := make([]func(T), 0, len(v.subs))
	for _, sub := range v.subs {
		subs = append(subs, sub)
	}
	v.mu.Unlock()

	for _, sub := range subs {
		sub(v.clone(snapshot))
	}
	return snapshot
}

// Subscribe registers fn for every future change. The returned function
// removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}
