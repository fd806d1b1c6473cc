// Package timestamp formats pino epoch-millisecond timestamps for display.
package timestamp

import "time"

// Layout is the display layout shared by UTC and local rendering. The date
// and time are separated by a space, never by the ISO "T".
const Layout = "2006-01-02 15:04:05.000"

// FromMillis converts epoch milliseconds to a time.Time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// Format renders ms as "YYYY-MM-DD HH:mm:ss.SSS". UTC output carries a
// trailing "Z"; local output carries no zone designator.
func Format(ms int64, utc bool) string {
	t := FromMillis(ms)
	if utc {
		return t.UTC().Format(Layout) + "Z"
	}
	return t.In(time.Local).Format(Layout)
}
