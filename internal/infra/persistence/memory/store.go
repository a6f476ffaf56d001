// Package memory contains an in-process implementation of the persistence layer.
// It is the default store and backs most of the test suite.
package memory

import (
	"context"
	"sync"
	"time"

	"stayscape/internal/domain/entity"

	"github.com/pkg/errors"
)

// Store holds one table per entity type plus the per-property locks used by units of work.
type Store struct {
	users      *Table[entity.User]
	properties *Table[entity.Property]
	bookings   *Table[entity.Booking]
	reviews    *Table[entity.Review]
	favorites  *Table[entity.Favorite]

	locks *keyedLocks
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users: NewTable(
			func(u *entity.User) int64 { return u.ID },
			func(u *entity.User, id int64) { u.ID = id },
			copyUser,
		),
		properties: NewTable(
			func(p *entity.Property) int64 { return p.ID },
			func(p *entity.Property, id int64) { p.ID = id },
			(*entity.Property).Clone,
		),
		bookings: NewTable(
			func(b *entity.Booking) int64 { return b.ID },
			func(b *entity.Booking, id int64) { b.ID = id },
			nil,
		),
		reviews: NewTable(
			func(r *entity.Review) int64 { return r.ID },
			func(r *entity.Review, id int64) { r.ID = id },
			nil,
		),
		favorites: NewTable(
			func(f *entity.Favorite) int64 { return f.ID },
			func(f *entity.Favorite, id int64) { f.ID = id },
			nil,
		),
		locks: newKeyedLocks(),
		now:   time.Now,
	}
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}

	return &c
}

func (s *Store) stamp(t *time.Time) {
	if t.IsZero() {
		*t = s.now().UTC()
	}
}

// keyedLocks is a set of mutexes keyed by property ID.
// A lock can be abandoned while waiting by cancelling the context.
type keyedLocks struct {
	mu    sync.Mutex
	slots map[int64]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{slots: make(map[int64]*lockSlot)}
}

func (k *keyedLocks) acquire(ctx context.Context, key int64) error {
	k.mu.Lock()
	slot, ok := k.slots[key]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		k.slots[key] = slot
	}
	slot.refs++
	k.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.mu.Lock()
		k.dropRefLocked(key, slot)
		k.mu.Unlock()

		return errors.Wrapf(ctx.Err(), "waiting for lock on property %d", key)
	}
}

func (k *keyedLocks) release(key int64) {
	k.mu.Lock()
	defer k.mu.Unlock()

	slot, ok := k.slots[key]
	if !ok {
		return
	}
	<-slot.ch
	k.dropRefLocked(key, slot)
}

func (k *keyedLocks) dropRefLocked(key int64, slot *lockSlot) {
	slot.refs--
	if slot.refs == 0 {
		delete(k.slots, key)
	}
}
