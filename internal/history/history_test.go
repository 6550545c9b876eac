package history_test

import (
	stderrors "errors"
	"testing"
	"time"

	"codeberg.org/mutker/bodyctl/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns base, base+step, base+2*step, ...
func stepClock(base time.Time, step time.Duration) history.Clock {
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * step)
		n++
		return t
	}
}

var base = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestLogAppendOrder(t *testing.T) {
	l := history.NewLog[int](stepClock(base, time.Hour))
	for i := 1; i <= 3; i++ {
		l.Append(i)
	}

	all := l.All()
	require.Len(t, all, 3)
	for i, e := range all {
		assert.Equal(t, i+1, e.Value)
		assert.Equal(t, base.Add(time.Duration(i)*time.Hour), e.Timestamp)
	}

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last.Value)
}

func TestLogStampsNeverDecrease(t *testing.T) {
	l := history.NewLog[string](stepClock(base, -time.Minute))
	first := l.Append("a")
	second := l.Append("b")

	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.Equal(t, base, second.Timestamp)
}

func TestLogAllIsCopy(t *testing.T) {
	l := history.NewLog[int](nil)
	l.Append(1)

	all := l.All()
	all[0].Value = 42

	last, _ := l.Last()
	assert.Equal(t, 1, last.Value)
}

func TestLogChronological(t *testing.T) {
	stamps := []time.Time{base.Add(2 * time.Hour), base.Add(2 * time.Hour), base.Add(3 * time.Hour)}
	i := 0
	l := history.NewLog[string](func() time.Time { ts := stamps[i]; i++; return ts })
	l.Append("a")
	l.Append("b")
	l.Append("c")

	newest := l.Chronological(true)
	assert.Equal(t, []string{"c", "a", "b"}, values(newest))

	oldest := l.Chronological(false)
	assert.Equal(t, []string{"a", "b", "c"}, values(oldest))

	// storage order is untouched
	assert.Equal(t, []string{"a", "b", "c"}, values(l.All()))
}

func TestLogFilterAndClear(t *testing.T) {
	l := history.NewLog[int](nil)
	assert.False(t, l.Clear())

	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	even := l.Filter(func(e history.Entry[int]) bool { return e.Value%2 == 0 })
	assert.Len(t, even, 3)

	assert.True(t, l.Clear())
	assert.Equal(t, 0, l.Len())
	_, ok := l.Last()
	assert.False(t, ok)
}

func TestQueueDrainFIFO(t *testing.T) {
	q := history.NewQueue[int]()
	for i := 1; i <= 4; i++ {
		q.Push(i)
	}

	var got []int
	n, err := q.Drain(func(v int) error {
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainStopsOnError(t *testing.T) {
	q := history.NewQueue[int]()
	q.Push(1)
	q.Push(-1)
	q.Push(3)

	errBad := stderrors.New("bad")
	var got []int
	n, err := q.Drain(func(v int) error {
		if v < 0 {
			return errBad
		}
		got = append(got, v)
		return nil
	})

	require.ErrorIs(t, err, errBad)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 2, q.Len())
}

func values[T any](entries []history.Entry[T]) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out
}
