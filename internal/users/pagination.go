package users

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of users returned per page.
const DefaultPageSize = 5

// ParsePage reads a 1-indexed page number. Missing, non-numeric and
// non-positive values yield 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset is the number of rows skipped before the given page. It
// saturates at math.MaxInt instead of wrapping for very large pages.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// TotalPages is ceil(total/pageSize); zero records means zero pages.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
