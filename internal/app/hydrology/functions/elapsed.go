package functions

import (
	"fmt"
	"time"
)

const day time.Duration = 24 * time.Hour

// SinceLastData describes how long ago the last sample arrived.
func SinceLastData(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(elapsed/time.Minute))
	case elapsed < day:
		return fmt.Sprintf("%d hours ago", int(elapsed/time.Hour))
	case elapsed < 7*day:
		return fmt.Sprintf("%d days ago", int(elapsed/day))
	case elapsed < 30*day:
		return "more than a week ago"
	default:
		return "more than a month ago"
	}
}
