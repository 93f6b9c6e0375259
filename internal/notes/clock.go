package notes

import "time"

// DailyNoteLayout is the time layout for daily note names (DD-MM-YYYY).
const DailyNoteLayout = "02-01-2006"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// DailyNoteName returns the file name of the daily note for t.
// The calendar date is taken in UTC so the name doesn't depend on the local zone.
func DailyNoteName(t time.Time) string {
	return t.UTC().Format(DailyNoteLayout) + ".md"
}
