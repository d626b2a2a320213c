// Package store persists each collection as a single pretty-printed JSON
// array file, rewritten wholesale on every mutation. Reads that fail (missing
// file, unreadable file, malformed JSON) degrade to the collection's seed
// defaults instead of propagating: the data is informational and availability
// wins over strict durability here.
//
// Every operation is a full read-modify-write of the collection under a
// per-collection mutex, so two requests against the same collection cannot
// lose each other's update. There is still no transaction boundary spanning
// multiple collections.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"checktrack/internal/ids"
)

// ErrNotFound is returned by id lookups that miss.
var ErrNotFound = errors.New("record not found")

// Doc is the pointer-side contract a stored record type satisfies.
type Doc[T any] interface {
	*T
	DocID() string
	SetDocID(id string)
}

// Collection is a keyed collection of T backed by one JSON file.
type Collection[T any, P Doc[T]] struct {
	mu       sync.Mutex
	path     string
	defaults func() []T
}

// New creates a collection over path. defaults supplies the seed records used
// when the file is absent or unreadable; it may be called more than once.
func New[T any, P Doc[T]](path string, defaults func() []T) *Collection[T, P] {
	if defaults == nil {
		defaults = func() []T { return []T{} }
	}
	return &Collection[T, P]{path: path, defaults: defaults}
}

// load reads the whole collection. The caller must hold c.mu.
func (c *Collection[T, P]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		recs := c.defaults()
		if errors.Is(err, os.ErrNotExist) {
			// First access: materialize the seed so later reads see it.
			if werr := c.save(recs); werr != nil {
				log.Printf("store: failed to initialize %s: %v", c.path, werr)
			}
		} else {
			log.Printf("store: failed to read %s, falling back to defaults: %v", c.path, err)
		}
		return recs
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Printf("store: failed to parse %s, falling back to defaults: %v", c.path, err)
		return c.defaults()
	}
	return recs
}

// save rewrites the whole collection file. The caller must hold c.mu.
func (c *Collection[T, P]) save(recs []T) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// Init touches the collection so an absent file is created with the seed
// defaults. Safe to call more than once.
func (c *Collection[T, P]) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
}

// List returns every record. It never fails: an absent or broken file yields
// the seed defaults.
func (c *Collection[T, P]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Get returns the record with the given id.
func (c *Collection[T, P]) Get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.load() {
		if P(&rec).DocID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Insert assigns a fresh id to rec, appends it and persists the collection
// before returning.
func (c *Collection[T, P]) Insert(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	P(&rec).SetDocID(ids.New())
	recs := append(c.load(), rec)
	if err := c.save(recs); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update applies a shallow field merge: every field named in patch overwrites
// the stored value, every other field is retained. Nested structures are
// replaced whole, not merged. The id can never be patched away. The merged
// record is decoded back through T, so a patch with the wrong shape fails
// before anything is written.
func (c *Collection[T, P]) Update(id string, patch map[string]json.RawMessage) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	recs := c.load()
	for i, rec := range recs {
		if P(&rec).DocID() != id {
			continue
		}

		current, err := json.Marshal(rec)
		if err != nil {
			return zero, fmt.Errorf("encode record %s: %w", id, err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(current, &fields); err != nil {
			return zero, fmt.Errorf("decode record %s: %w", id, err)
		}
		for k, v := range patch {
			fields[k] = v
		}
		// Ids are stable once assigned.
		idRaw, _ := json.Marshal(id)
		fields["id"] = idRaw

		mergedRaw, err := json.Marshal(fields)
		if err != nil {
			return zero, fmt.Errorf("encode merged record %s: %w", id, err)
		}
		var merged T
		if err := json.Unmarshal(mergedRaw, P(&merged)); err != nil {
			return zero, fmt.Errorf("invalid patch for record %s: %w", id, err)
		}

		recs[i] = merged
		if err := c.save(recs); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id and persists the collection.
// It reports ErrNotFound when no record existed; the collection is left
// untouched in that case.
func (c *Collection[T, P]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs := c.load()
	for i, rec := range recs {
		if P(&rec).DocID() == id {
			recs = append(recs[:i], recs[i+1:]...)
			return c.save(recs)
		}
	}
	return ErrNotFound
}

// Query returns every record matching pred, in collection order.
func (c *Collection[T, P]) Query(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []T
	for _, rec := range c.load() {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Reset rewrites the collection with its seed defaults, discarding whatever
// is on disk.
func (c *Collection[T, P]) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(c.defaults())
}
