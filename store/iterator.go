package store

import (
	"bytes"

	"github.com/google/btree"
)

// source marks where the current item comes from.
type source int32

const (
	us source = iota
	parent
	both
	none
)

// mergeIter walks a materialized slice of cached items together with the
// iterator of the backing store, taking into consideration overwrites
// and deletes recorded in the cache.
type mergeIter struct {
	cache     []btree.Item
	idx       int
	parent    Iterator
	ascending bool
}

var _ Iterator = (*mergeIter)(nil)

func newMergeIter(cache []btree.Item, parent Iterator, ascending bool) (*mergeIter, error) {
	iter := &mergeIter{
		cache:     cache,
		parent:    parent,
		ascending: ascending,
	}
	if err := iter.skipAllDeleted(); err != nil {
		iter.Close()
		return nil, err
	}
	return iter, nil
}

// Valid implements Iterator and returns true iff it can be read.
func (i *mergeIter) Valid() bool {
	return i.cacheValid() || i.parentValid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
func (i *mergeIter) Next() error {
	switch i.firstKey() {
	case us:
		i.idx++
	case both:
		i.idx++
		fallthrough
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("advanced past the end")
	}

	// Keep advancing over all deleted entries.
	return i.skipAllDeleted()
}

// Key returns the key of the cursor.
func (i *mergeIter) Key() (key []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache[i.idx].(keyer).Key()
	case parent:
		return i.parent.Key()
	default: // none
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *mergeIter) Value() (value []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache[i.idx].(setItem).value
	case parent:
		return i.parent.Value()
	default: // none
		panic("advanced past the end")
	}
}

// Close releases the Iterator.
func (i *mergeIter) Close() {
	if i.parent != nil {
		i.parent.Close()
	}
	i.cache = nil
}

// skipAllDeleted loops and skips any number of deleted items.
func (i *mergeIter) skipAllDeleted() error {
	more := true
	for more {
		var err error
		more, err = i.skipDeleted()
		if err != nil {
			return err
		}
	}
	return nil
}

// skipDeleted jumps over one deleted cache entry and whatever it shadows
// in the parent. Returns true if it skipped, so the caller can try
// again.
func (i *mergeIter) skipDeleted() (bool, error) {
	src := i.firstKey()
	if src == us || src == both {
		if _, ok := i.cache[i.idx].(deletedItem); ok {
			i.idx++
			// If the parent had the same key, advance it as well.
			if src == both {
				if err := i.parent.Next(); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// firstKey selects the iterator that is next in line, if any.
func (i *mergeIter) firstKey() source {
	// If only one or none is valid, it is clear which to use.
	if !i.parentValid() {
		if !i.cacheValid() {
			return none
		}
		return us
	} else if !i.cacheValid() {
		return parent
	}

	parKey := i.parent.Key()
	usKey := i.cache[i.idx].(keyer).Key()

	cmp := bytes.Compare(parKey, usKey)
	if !i.ascending {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

func (i *mergeIter) cacheValid() bool {
	return i.idx < len(i.cache)
}

// parentValid makes sure the parent is non-nil before checking if it is
// valid.
func (i *mergeIter) parentValid() bool {
	return i.parent != nil && i.parent.Valid()
}
