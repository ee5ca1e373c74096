// Package overlap decides whether two half-open time intervals conflict.
package overlap

import "time"

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any
// instant. Intervals that touch exactly at a boundary do not overlap, so
// back-to-back bookings are allowed.
//
// Pure and total: no side effects, no failure modes.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
