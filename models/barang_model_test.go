package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateFor(t *testing.T) {
	b := Barang{
		M3PP:        850000,
		KgPD:        4500,
		ContainerDD: 12000000,
	}

	rate, ok := b.RateFor(SatuanM3, DoorPP)
	assert.True(t, ok)
	assert.Equal(t, 850000.0, rate)

	rate, ok = b.RateFor(SatuanKg, DoorPD)
	assert.True(t, ok)
	assert.Equal(t, 4500.0, rate)

	rate, ok = b.RateFor(SatuanContainer, DoorDD)
	assert.True(t, ok)
	assert.Equal(t, 12000000.0, rate)
}

func TestRateForMissing(t *testing.T) {
	b := Barang{M3PP: 850000}

	// Tarif nol dan kombinasi tidak dikenal sama-sama tidak tersedia.
	_, ok := b.RateFor(SatuanM3, DoorDD)
	assert.False(t, ok)

	_, ok = b.RateFor("ton", DoorPP)
	assert.False(t, ok)
}
