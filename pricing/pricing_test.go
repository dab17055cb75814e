package pricing

import (
	"testing"

	"freight-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBarang() *models.Barang {
	b := &models.Barang{
		M3PP: 850000,
		M3PD: 950000,
		KgPP: 4500,
	}
	b.ID = 7
	return b
}

func TestResolvePriceM3PortToPort(t *testing.T) {
	rate, total, err := ResolvePrice(sampleBarang(), models.SatuanM3, models.DoorPP, 3)

	require.NoError(t, err)
	assert.Equal(t, 850000.0, rate)
	assert.Equal(t, 2550000.0, total)
}

func TestResolvePriceMissingRate(t *testing.T) {
	// Tarif container/dd tidak diisi, harus error, bukan total nol.
	_, _, err := ResolvePrice(sampleBarang(), models.SatuanContainer, models.DoorDD, 2)

	require.Error(t, err)
	var missing *MissingRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, uint(7), missing.BarangID)
	assert.Equal(t, models.SatuanContainer, missing.Satuan)
	assert.Equal(t, models.DoorDD, missing.Door)
}

func TestResolvePriceZeroRateTreatedAsMissing(t *testing.T) {
	b := sampleBarang()
	b.KgDD = 0

	_, _, err := ResolvePrice(b, models.SatuanKg, models.DoorDD, 1)

	var missing *MissingRateError
	require.ErrorAs(t, err, &missing)
}

func TestResolvePriceRejectsNonPositiveQty(t *testing.T) {
	_, _, err := ResolvePrice(sampleBarang(), models.SatuanM3, models.DoorPP, 0)
	assert.Error(t, err)

	_, _, err = ResolvePrice(sampleBarang(), models.SatuanM3, models.DoorPP, -2)
	assert.Error(t, err)
}

func TestResolvePriceIsPure(t *testing.T) {
	b := sampleBarang()
	before := *b

	_, _, _ = ResolvePrice(b, models.SatuanM3, models.DoorPP, 3)
	_, _, _ = ResolvePrice(b, models.SatuanContainer, models.DoorDD, 1)

	assert.Equal(t, before, *b)
}

func TestComputeTax(t *testing.T) {
	tax := ComputeTax(2550000)

	assert.Equal(t, 2550000.0, tax.Dpp)
	assert.InDelta(t, 28050.0, tax.Ppn, 0.0001)
	assert.InDelta(t, 51000.0, tax.Pph23, 0.0001)
	assert.InDelta(t, 79050.0, tax.TotalTax, 0.0001)
}

func TestComputeTaxZeroBase(t *testing.T) {
	tax := ComputeTax(0)

	assert.Zero(t, tax.Ppn)
	assert.Zero(t, tax.Pph23)
	assert.Zero(t, tax.TotalTax)
}
