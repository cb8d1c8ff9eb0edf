package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hack-Nocturne/dsymup/vars"
)

// FormatTime returns a formatted string for a duration.
func FormatTime(duration time.Duration) string {
	return fmt.Sprintf("(%.2f sec)", duration.Seconds())
}

// FormatSize renders a byte count using binary units.
func FormatSize(size int64) string {
	if size < vars.KB_SIZE {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)
	units := []string{"KB", "MB", "GB", "TB"}
	unit := ""
	for _, u := range units {
		value /= vars.KB_SIZE
		unit = u
		if value < vars.KB_SIZE {
			break
		}
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}

// SplitList splits a comma separated option value, dropping blanks.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Plural returns word with an "s" unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
