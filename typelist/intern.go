package typelist

import (
	"hash/maphash"
	"reflect"
	"slices"
	"sync"
	"weak"
)

// table canonicalizes type sequences: while any List refers to
// a given sequence, every other List holding an equal sequence
// refers to the same entry, so Lists can be compared with ==.
//
// Entries are held weakly; the table does not necessarily
// always grow in size.
type table struct {
	seed maphash.Seed

	// mu guards the fields below it.
	mu      sync.Mutex
	entries map[uint64][]weak.Pointer[entry]
}

// entry holds a canonical sequence. Its types
// are never modified after creation.
type entry struct {
	types []reflect.Type
}

var lists = &table{
	seed:    maphash.MakeSeed(),
	entries: make(map[uint64][]weak.Pointer[entry]),
}

// make returns the canonical entry for ts, which must not be
// modified afterwards. The empty sequence is always represented
// by nil: it is never hashed.
func (t *table) make(ts []reflect.Type) *entry {
	if len(ts) == 0 {
		return nil
	}
	h := t.hashOf(ts)

	t.mu.Lock()
	defer t.mu.Unlock()
	entries := t.entries[h]
	firstEmpty := -1
	for i, ep := range entries {
		if e := ep.Value(); e != nil {
			if slices.Equal(e.types, ts) {
				return e
			}
		} else if firstEmpty == -1 {
			firstEmpty = i
		}
	}
	e := &entry{types: ts}
	// TODO use runtime.AddCleanup to drop a hash bucket
	// once all its entries have been collected.
	wp := weak.Make(e)
	if firstEmpty != -1 {
		entries[firstEmpty] = wp
	} else {
		t.entries[h] = append(entries, wp)
	}
	return e
}

func (t *table) hashOf(ts []reflect.Type) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	for _, typ := range ts {
		maphash.WriteComparable(&h, typ)
	}
	return h.Sum64()
}
