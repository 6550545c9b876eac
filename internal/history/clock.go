package history

import "time"

// Clock supplies the wall-clock time used to stamp records.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time {
	return time.Now()
}
