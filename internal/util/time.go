package util

import (
	"math"
	"time"
)

// FromUnixSeconds converts an epoch value with a fractional part, as Reddit
// reports created_utc, into a time.Time
func FromUnixSeconds(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}
