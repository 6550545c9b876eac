package history

import (
	"sort"
	"time"
)

// Entry is a value stamped with the time it was appended.
type Entry[T any] struct {
	Value     T
	Timestamp time.Time
}

// Log is an append-only, insertion-ordered sequence of entries. Stamps are
// non-decreasing: a clock that steps backwards is pinned to the last stamp.
// Log is not safe for concurrent use; owners guard it themselves.
type Log[T any] struct {
	clock   Clock
	entries []Entry[T]
}

// NewLog returns an empty log stamped by clock, or SystemClock if nil.
func NewLog[T any](clock Clock) *Log[T] {
	if clock == nil {
		clock = SystemClock
	}

	return &Log[T]{clock: clock}
}

// Append stamps v and adds it to the end of the log.
func (l *Log[T]) Append(v T) Entry[T] {
	now := l.clock()
	if n := len(l.entries); n > 0 && now.Before(l.entries[n-1].Timestamp) {
		now = l.entries[n-1].Timestamp
	}

	e := Entry[T]{Value: v, Timestamp: now}
	l.entries = append(l.entries, e)

	return e
}

func (l *Log[T]) Len() int {
	return len(l.entries)
}

// All returns a copy of the entries in insertion order.
func (l *Log[T]) All() []Entry[T] {
	out := make([]Entry[T], len(l.entries))
	copy(out, l.entries)

	return out
}

// Last returns the most recently appended entry.
func (l *Log[T]) Last() (Entry[T], bool) {
	if len(l.entries) == 0 {
		return Entry[T]{}, false
	}

	return l.entries[len(l.entries)-1], true
}

// Filter returns the entries for which keep returns true, in insertion order.
func (l *Log[T]) Filter(keep func(Entry[T]) bool) []Entry[T] {
	var out []Entry[T]
	for _, e := range l.entries {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// Chronological returns a copy sorted by timestamp, oldest first unless
// newestFirst is set. Equal stamps keep insertion order.
func (l *Log[T]) Chronological(newestFirst bool) []Entry[T] {
	out := l.All()
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}

// Clear drops every entry and reports whether anything was removed.
func (l *Log[T]) Clear() bool {
	if len(l.entries) == 0 {
		return false
	}
	l.entries = nil

	return true
}
