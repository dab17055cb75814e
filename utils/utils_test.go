package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 2.550.000", FormatRupiah(2550000))
	assert.Equal(t, "Rp 79.050", FormatRupiah(79050))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "-Rp 1.000", FormatRupiah(-1000))
}
