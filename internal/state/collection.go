package state

import "sync"

// Phase is the load status of a collection.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// Record is anything held in a Collection.
type Record interface {
	RecordID() string
}

// WorkflowRecord is a Record whose lifecycle is governed by a Machine.
type WorkflowRecord interface {
	Record
	RecordStatus() string
}

// Collection holds the canonical in-memory set of records for one entity
// type. It has a single writer (the owning Controller) and any number of
// readers; readers always get snapshot copies.
type Collection[T Record] struct {
	mu      sync.RWMutex
	records []T
	phase   Phase
	lastErr string

	// seq advances on every mutation settlement; a fetch-all captures it at
	// issuance so a response that raced a mutation merges instead of
	// clobbering the newer local state.
	seq        uint64
	tombstones []string
}

func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{phase: PhaseIdle}
}

// All returns a snapshot of the collection in arrival order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given identifier, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, rec := range c.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T]) Status() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Err returns the message recorded by the last failed operation, if any.
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// beginLoad marks the collection loading and returns the mutation sequence
// observed at issuance.
func (c *Collection[T]) beginLoad() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseLoading
	return c.seq
}

// fetchAllSucceeded settles a fetch-all. When no mutation settled since the
// fetch was issued the response replaces the collection wholesale. Otherwise
// the fetched set is merged by identifier: local records win, records created
// locally in the interim are kept, and records deleted locally stay deleted.
func (c *Collection[T]) fetchAllSucceeded(records []T, issuedAt uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq == issuedAt {
		c.records = append([]T(nil), records...)
	} else {
		c.records = c.mergeLocked(records)
	}
	c.tombstones = nil
	c.phase = PhaseSucceeded
	c.lastErr = ""
}

func (c *Collection[T]) mergeLocked(fetched []T) []T {
	local := make(map[string]T, len(c.records))
	for _, rec := range c.records {
		local[rec.RecordID()] = rec
	}
	deleted := make(map[string]bool, len(c.tombstones))
	for _, id := range c.tombstones {
		deleted[id] = true
	}

	merged := make([]T, 0, len(fetched)+len(c.records))
	seen := make(map[string]bool, len(fetched))
	for _, rec := range fetched {
		id := rec.RecordID()
		if deleted[id] {
			continue
		}
		seen[id] = true
		if localRec, ok := local[id]; ok {
			merged = append(merged, localRec)
		} else {
			merged = append(merged, rec)
		}
	}
	// Records settled locally but unknown to the fetched snapshot keep their
	// newest-first position ahead of the fetched set.
	head := make([]T, 0)
	for _, rec := range c.records {
		if !seen[rec.RecordID()] {
			head = append(head, rec)
		}
	}
	return append(head, merged...)
}

// createSucceeded prepends the server-returned record. A duplicate settlement
// for an identifier already present replaces that record instead.
func (c *Collection[T]) createSucceeded(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	for i, existing := range c.records {
		if existing.RecordID() == rec.RecordID() {
			c.records[i] = rec
			c.phase = PhaseSucceeded
			return
		}
	}
	c.records = append([]T{rec}, c.records...)
	c.phase = PhaseSucceeded
}

// updateSucceeded replaces the record with a matching identifier in place.
// An unknown identifier is a benign eventual-consistency lag and is dropped.
func (c *Collection[T]) updateSucceeded(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.records {
		if existing.RecordID() == rec.RecordID() {
			c.seq++
			c.records[i] = rec
			c.phase = PhaseSucceeded
			return true
		}
	}
	return false
}

// deleteSucceeded removes the record with the given identifier; absence is a
// no-op.
func (c *Collection[T]) deleteSucceeded(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.records {
		if existing.RecordID() == id {
			c.seq++
			c.records = append(c.records[:i:i], c.records[i+1:]...)
			c.tombstones = append(c.tombstones, id)
			c.phase = PhaseSucceeded
			return true
		}
	}
	return false
}

// failed records the failure message. Existing records are kept: stale data
// beats a blanked view.
func (c *Collection[T]) failed(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseFailed
	c.lastErr = message
}
