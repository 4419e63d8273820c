// Package entity holds the registry that owns and ticks every world entity.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/logger"
)

// Updater is implemented by entities with per-frame work.
type Updater interface {
	Update(dt float64) error
}

// Detacher is implemented by entities that release scene nodes or pending
// loads when removed.
type Detacher interface {
	Detach()
}

// Namer lets an entity label its own diagnostics.
type Namer interface {
	Name() string
}

// Handle identifies a registered entity.
type Handle uuid.UUID

// String returns the handle in canonical UUID form.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

type entry struct {
	handle Handle
	entity any
}

// Registry is the sole owner of world entities. It ticks them once per
// frame in registration order; a failing entity never stops the others.
// Entities are compared by identity, so register pointers.
type Registry struct {
	entries []entry

	// removed collects handles dropped while a tick is running.
	removed map[Handle]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends e and returns its handle.
func (r *Registry) Add(e any) Handle {
	h := Handle(uuid.New())
	r.entries = append(r.entries, entry{handle: h, entity: e})
	return h
}

// Remove removes e, preserving the order of the rest, and detaches it.
// It reports whether e was registered.
func (r *Registry) Remove(e any) bool {
	for i, en := range r.entries {
		if en.entity == e {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveHandle removes the entity registered under h.
func (r *Registry) RemoveHandle(h Handle) bool {
	for i, en := range r.entries {
		if en.handle == h {
			r.removeAt(i)
			return true
		}
	}
	return false
}

func (r *Registry) removeAt(i int) {
	e := r.entries[i].entity
	if r.removed != nil {
		r.removed[r.entries[i].handle] = struct{}{}
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	if d, ok := e.(Detacher); ok {
		d.Detach()
	}
}

// Get returns the entity registered under h.
func (r *Registry) Get(h Handle) (any, bool) {
	for _, en := range r.entries {
		if en.handle == h {
			return en.entity, true
		}
	}
	return nil, false
}

// Contains reports whether h is registered.
func (r *Registry) Contains(h Handle) bool {
	_, ok := r.Get(h)
	return ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entities returns a snapshot of the entities in tick order.
func (r *Registry) Entities() []any {
	out := make([]any, len(r.entries))
	for i, en := range r.entries {
		out[i] = en.entity
	}
	return out
}

// Tick updates every entity once, in order. Errors and panics are
// contained per entity, logged, and returned together.
func (r *Registry) Tick(dt float64) error {
	// Entities added during the tick run from the next one. Entities
	// removed during the tick are skipped at once.
	snapshot := make([]entry, len(r.entries))
	copy(snapshot, r.entries)
	r.removed = make(map[Handle]struct{})
	defer func() { r.removed = nil }()

	var errs error
	for _, en := range snapshot {
		if _, gone := r.removed[en.handle]; gone {
			continue
		}
		u, ok := en.entity.(Updater)
		if !ok {
			continue
		}
		if err := safeUpdate(u, dt); err != nil {
			err = fmt.Errorf("%s: %w", describe(en), err)
			logger.Warn("entity update failed", zap.String("entity", describe(en)), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func safeUpdate(u Updater, dt float64) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return u.Update(dt)
}

func describe(en entry) string {
	if n, ok := en.entity.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T %s", en.entity, en.handle.String()[:8])
}
