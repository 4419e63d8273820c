package assets

// State is the load state of a Slot.
type State uint8

const (
	Loading State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Slot holds an asset an entity is waiting for. It settles once, to Ready
// or Failed; after Detach every transition is ignored so late callbacks
// cannot touch a removed entity.
type Slot[T any] struct {
	state    State
	value    T
	err      error
	detached bool
}

// NewSlot creates a slot in the Loading state.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Resolve moves a loading slot to Ready. It reports whether it did.
func (s *Slot[T]) Resolve(v T) bool {
	if s.detached || s.state != Loading {
		return false
	}
	s.state = Ready
	s.value = v
	return true
}

// Fail moves a loading slot to Failed. It reports whether it did.
func (s *Slot[T]) Fail(err error) bool {
	if s.detached || s.state != Loading {
		return false
	}
	s.state = Failed
	s.err = err
	return true
}

// Detach marks the owner as gone.
func (s *Slot[T]) Detach() {
	s.detached = true
}

// Detached reports whether Detach was called.
func (s *Slot[T]) Detached() bool {
	return s.detached
}

// Get returns the value when the slot is Ready.
func (s *Slot[T]) Get() (T, bool) {
	if s.state != Ready || s.detached {
		var zero T
		return zero, false
	}
	return s.value, true
}

// State returns the current state.
func (s *Slot[T]) State() State {
	return s.state
}

// Err returns the failure reason of a Failed slot.
func (s *Slot[T]) Err() error {
	return s.err
}
