package game

import (
	"fmt"
	"time"
)

// formatFrameTime formats a frame duration as milliseconds, e.g. "1.42ms"
func formatFrameTime(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
