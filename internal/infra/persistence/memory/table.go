package memory

import (
	"cmp"
	"slices"
	"sync"
)

// Table is an in-memory record set for one entity type.
// IDs are assigned from a per-table counter starting at 1 and are never reused.
// Records are copied on the way in and out, so callers never share memory with the table.
type Table[T any] struct {
	mu     sync.RWMutex
	seq    int64
	rows   map[int64]*T
	idOf   func(*T) int64
	setID  func(*T, int64)
	copyOf func(*T) *T
}

// NewTable creates an empty table. copyOf may be nil for types without reference fields.
func NewTable[T any](idOf func(*T) int64, setID func(*T, int64), copyOf func(*T) *T) *Table[T] {
	if copyOf == nil {
		copyOf = func(v *T) *T {
			c := *v
			return &c
		}
	}

	return &Table[T]{
		rows:   make(map[int64]*T),
		idOf:   idOf,
		setID:  setID,
		copyOf: copyOf,
	}
}

// Create assigns the next ID to rec, stores a copy and returns it.
func (t *Table[T]) Create(rec *T) *T {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.insertLocked(rec)
}

// CreateUnique stores rec unless a row matching dup already exists.
// It returns the stored or existing row, and whether rec was inserted.
func (t *Table[T]) CreateUnique(rec *T, dup func(*T) bool) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range t.rows {
		if dup(row) {
			return t.copyOf(row), false
		}
	}

	return t.insertLocked(rec), true
}

func (t *Table[T]) insertLocked(rec *T) *T {
	t.seq++
	t.setID(rec, t.seq)
	t.rows[t.seq] = t.copyOf(rec)

	return t.copyOf(rec)
}

// Get returns a copy of the row with the given ID.
func (t *Table[T]) Get(id int64) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}

	return t.copyOf(row), true
}

// List returns copies of all rows ordered by ID.
func (t *Table[T]) List() []*T {
	return t.Where(func(*T) bool { return true })
}

// Where returns copies of the rows matching pred ordered by ID.
func (t *Table[T]) Where(pred func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0)
	for _, row := range t.rows {
		if pred(row) {
			out = append(out, t.copyOf(row))
		}
	}
	slices.SortFunc(out, func(a, b *T) int {
		return cmp.Compare(t.idOf(a), t.idOf(b))
	})

	return out
}

// First returns the lowest-ID row matching pred.
func (t *Table[T]) First(pred func(*T) bool) (*T, bool) {
	rows := t.Where(pred)
	if len(rows) == 0 {
		return nil, false
	}

	return rows[0], true
}

// Update applies mutate to the stored row and returns the previous and new copies.
func (t *Table[T]) Update(id int64, mutate func(*T)) (before, after *T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, nil, false
	}

	before = t.copyOf(row)
	mutate(row)
	t.setID(row, id)

	return before, t.copyOf(row), true
}

// Delete removes the row and returns it.
func (t *Table[T]) Delete(id int64) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	delete(t.rows, id)

	return row, true
}

// Restore puts a previously removed or overwritten row back under its ID.
// It never moves the ID counter.
func (t *Table[T]) Restore(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[t.idOf(row)] = t.copyOf(row)
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.rows)
}
