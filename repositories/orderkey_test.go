package repositories

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOrderKeySameSecondDistinctAndSortable(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	taken := map[string]bool{}
	last := ""

	keys := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		key := NextOrderKey(now, taken, last)
		require.NotContains(t, taken, key)
		taken[key] = true
		last = key
		keys = append(keys, key)
	}

	assert.Equal(t, "20250610080000000", keys[0])
	assert.Equal(t, "20250610080000004", keys[4])
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestNextOrderKeyNeverGoesBackward(t *testing.T) {
	// Jam dinding mundur: kunci baru tetap harus lebih besar dari yang terakhir.
	later := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	taken := map[string]bool{}
	last := NextOrderKey(later, taken, "")
	taken[last] = true

	next := NextOrderKey(earlier, taken, last)
	assert.Greater(t, next, last)
}

func TestNextOrderKeyRollsToNextSecondWhenSuffixExhausted(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	taken := map[string]bool{}
	for i := 0; i < 1000; i++ {
		taken[NextOrderKey(now, taken, "")] = true
	}

	key := NextOrderKey(now, taken, "")
	assert.Equal(t, "20250610080001000", key)
}
