package timex

import (
	"fmt"
	"time"
)

// Stamp returns the current local time in Layout form, the string the
// scripts drop into figure names and log lines.
func Stamp() string {
	return time.Now().Format(Layout)
}

// Format renders t in Layout form, truncating below one second.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse is the inverse of Format. The result is in UTC: Layout carries
// no zone, and second precision round-trips exactly.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadStamp, s)
	}
	return t, nil
}

// HumanDuration renders an elapsed duration at the precision a human
// scans in a log: raw seconds below a minute, minute and hour forms up
// to a day, raw seconds again beyond that.
func HumanDuration(d time.Duration) string {
	secs := d.Seconds()
	switch {
	case secs < 60:
		return fmt.Sprintf("%2.5f s", secs)
	case secs < 3600:
		total := int(secs)
		return fmt.Sprintf("%02d min %02d s", total/60, total%60)
	case secs < 86400:
		total := int(secs)
		return fmt.Sprintf("%02d hr %02d min %02d s", total/3600, (total%3600)/60, total%60)
	default:
		return fmt.Sprintf("%2.5f s", secs)
	}
}
