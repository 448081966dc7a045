package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 3, TotalPages(41, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestShowing(t *testing.T) {
	assert.Equal(t, "0 results", Showing(1, 20, 0, 0))
	assert.Equal(t, "1-20 of 57 results", Showing(1, 20, 20, 57))
	assert.Equal(t, "41-57 of 57 results", Showing(3, 20, 17, 57))
}

func TestPageBounds(t *testing.T) {
	from, to := PageBounds(1, 20, 57)
	assert.Equal(t, []int{0, 20}, []int{from, to})

	from, to = PageBounds(3, 20, 57)
	assert.Equal(t, []int{40, 57}, []int{from, to})

	from, to = PageBounds(5, 20, 57)
	assert.Equal(t, []int{57, 57}, []int{from, to})
}
