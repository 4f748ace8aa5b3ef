// Package builder provides ID schemes for world vertices.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PlaceIDFn returns a zero-padded place label, e.g. 7→"place-007".
// Labels sort lexicographically in index order up to 999.
func PlaceIDFn(idx int) string {
	return fmt.Sprintf("place-%03d", idx)
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Negative indices fall back to DefaultIDFn.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
