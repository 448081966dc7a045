package utils

import (
	"fmt"
	"math"
)

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Showing renders the "showing" text of a list response, e.g. "21-40 of 57 results".
func Showing(page, limit, count int, total int64) string {
	if total == 0 {
		return "0 results"
	}
	start := (page-1)*limit + 1
	end := start + count - 1
	if end > int(total) {
		end = int(total)
	}
	return fmt.Sprintf("%d-%d of %d results", start, end, total)
}

// PageBounds returns the [from, to) slice indexes of a page over n items.
func PageBounds(page, limit, n int) (int, int) {
	from := (page - 1) * limit
	if from > n {
		from = n
	}
	to := from + limit
	if to > n {
		to = n
	}
	return from, to
}
