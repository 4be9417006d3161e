// Package state holds the client-side mirror of a server collection.
//
// Mutations are confirm-then-apply: the in-memory items only change after
// the server acknowledges a call, and always to the value the server sent
// back. A failed call leaves the items exactly as they were and records a
// message in State.Error.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/reelfolio/core/internal/client"
	"github.com/reelfolio/core/internal/domain/entities"
	"github.com/reelfolio/core/internal/infrastructure/logger"
)

// ErrUpdateUnsupported is returned by Update when the source has no update call
var ErrUpdateUnsupported = errors.New("collection does not support updates")

// Source is the server side of a collection
type Source[T entities.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Updater is implemented by sources that can replace a record in place
type Updater[T entities.Record] interface {
	Update(ctx context.Context, item T) (T, error)
}

// Placement decides where a newly created record goes
type Placement[T any] func(items []T, item T) []T

// Prepend puts new records first
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// State is a snapshot of a collection as seen by consumers. Version grows
// by one with every change.
type State[T any] struct {
	Items   []T
	Loading bool
	Error   string
	Version uint64
}

// Collection mirrors one server collection
type Collection[T entities.Record] struct {
	source    Source[T]
	placement Placement[T]
	logger    *logger.Logger

	mu          sync.RWMutex
	state       State[T]
	activated   bool
	subscribers map[int]func(State[T])
	nextSubID   int

	// notifyMu orders deliveries; delivered is the last version handed out
	notifyMu  sync.Mutex
	delivered uint64
}

// Option configures a Collection
type Option[T entities.Record] func(*Collection[T])

// WithPlacement sets where created records are inserted. The default is Prepend.
func WithPlacement[T entities.Record](placement Placement[T]) Option[T] {
	return func(c *Collection[T]) {
		c.placement = placement
	}
}

// WithLogger sets the logger used to report failed calls
func WithLogger[T entities.Record](logger *logger.Logger) Option[T] {
	return func(c *Collection[T]) {
		c.logger = logger
	}
}

// New creates an empty, not yet loaded collection
func New[T entities.Record](source Source[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		source:      source,
		placement:   Prepend[T],
		logger:      logger.NewNop(),
		state:       State[T]{Items: []T{}},
		subscribers: make(map[int]func(State[T])),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot. The Items slice is a copy.
func (c *Collection[T]) State() State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

// Items returns a copy of the current records
func (c *Collection[T]) Items() []T {
	return c.State().Items
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function removes the subscription.
//
// Deliveries never go backwards: a snapshot older than one already handed
// out is dropped, so the last snapshot a subscriber saw is the current state.
// fn runs synchronously and must not call back into the collection.
func (c *Collection[T]) Subscribe(fn func(State[T])) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Activate performs the initial load. Only the first call does anything.
func (c *Collection[T]) Activate(ctx context.Context) error {
	c.mu.Lock()
	if c.activated {
		c.mu.Unlock()
		return nil
	}
	c.activated = true
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Refresh replaces the items with the server's list. On failure the items
// are kept and the error is recorded.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.apply(func(s *State[T]) {
		s.Loading = true
	})

	items, err := c.source.List(ctx)

	c.apply(func(s *State[T]) {
		s.Loading = false
		if err != nil {
			s.Error = c.failure(err)
			return
		}
		s.Items = append(make([]T, 0, len(items)), items...)
		s.Error = ""
	})

	return err
}

// Create sends item to the server and inserts the record it returns
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	created, err := c.source.Create(ctx, item)
	if err != nil {
		c.recordFailure(err)
		var zero T
		return zero, err
	}

	c.apply(func(s *State[T]) {
		s.Items = c.placement(append([]T(nil), s.Items...), created)
	})

	return created, nil
}

// Update sends item to the server and replaces the cached record with the
// same id by the server's value
func (c *Collection[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T

	updater, ok := c.source.(Updater[T])
	if !ok {
		c.recordFailure(ErrUpdateUnsupported)
		return zero, ErrUpdateUnsupported
	}

	updated, err := updater.Update(ctx, item)
	if err != nil {
		c.recordFailure(err)
		return zero, err
	}

	c.apply(func(s *State[T]) {
		items := append([]T(nil), s.Items...)
		for i := range items {
			if items[i].RecordID() == updated.RecordID() {
				items[i] = updated
				break
			}
		}
		s.Items = items
	})

	return updated, nil
}

// Delete removes the record on the server, then from the cache
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.source.Delete(ctx, id); err != nil {
		c.recordFailure(err)
		return err
	}

	c.apply(func(s *State[T]) {
		items := make([]T, 0, len(s.Items))
		for _, item := range s.Items {
			if item.RecordID() != id {
				items = append(items, item)
			}
		}
		s.Items = items
	})

	return nil
}

// ClearError resets the error flag
func (c *Collection[T]) ClearError() {
	c.apply(func(s *State[T]) {
		s.Error = ""
	})
}

func (c *Collection[T]) recordFailure(err error) {
	c.apply(func(s *State[T]) {
		s.Error = c.failure(err)
	})
}

func (c *Collection[T]) failure(err error) string {
	c.logger.Warnw("Collection call failed", "error", err)

	var reqErr *client.RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}

// apply mutates the state under the lock, then notifies subscribers with
// the resulting snapshot outside of it
func (c *Collection[T]) apply(mutate func(*State[T])) {
	c.mu.Lock()
	mutate(&c.state)
	c.state.Version++
	snap := c.snapshot()
	subs := make([]func(State[T]), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if snap.Version <= c.delivered {
		return
	}
	c.delivered = snap.Version

	for _, fn := range subs {
		fn(snap)
	}
}

func (c *Collection[T]) snapshot() State[T] {
	s := c.state
	s.Items = append(make([]T, 0, len(c.state.Items)), c.state.Items...)
	return s
}
