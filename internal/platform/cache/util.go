package cache

import (
	"time"
)

// TimeUntilNextUTCMidnight returns the duration until the next UTC midnight.
// The catalog's list pages (popular, upcoming) shift with the release
// calendar, so cached entries are kept at most until the next day rolls over.
func TimeUntilNextUTCMidnight() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return next.Sub(now)
}
