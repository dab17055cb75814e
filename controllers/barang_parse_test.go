package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBarangRow() []string {
	return []string{
		"cust01", "CUST02", "SPAREPART MESIN",
		"120", "80", "100", "0.5",
		"850,000", "900000", "950000",
		"0", "0", "0",
		"0", "0", "0",
		"YES",
	}
}

func TestParseBarangCells(t *testing.T) {
	senderCode, receiverCode, barang, err := parseBarangCells(validBarangRow())

	require.NoError(t, err)
	assert.Equal(t, "CUST01", senderCode)
	assert.Equal(t, "CUST02", receiverCode)
	assert.Equal(t, "SPAREPART MESIN", barang.BarangName)
	assert.Equal(t, 120.0, barang.Panjang)
	assert.Equal(t, 0.5, barang.Berat)
	// Pemisah ribuan di template dibersihkan sebelum parse.
	assert.Equal(t, 850000.0, barang.M3PP)
	assert.True(t, barang.HasTax)
}

func TestParseBarangCellsShortRow(t *testing.T) {
	_, _, _, err := parseBarangCells([]string{"CUST01", "CUST02"})
	assert.Error(t, err)
}

func TestParseBarangCellsMissingRequired(t *testing.T) {
	row := validBarangRow()
	row[2] = "   "

	_, _, _, err := parseBarangCells(row)
	assert.Error(t, err)
}

func TestParseBarangCellsBadNumber(t *testing.T) {
	row := validBarangRow()
	row[7] = "850rb"

	_, _, _, err := parseBarangCells(row)
	assert.ErrorContains(t, err, "M3_PP")
}

func TestParseBarangCellsMissingTrailingCells(t *testing.T) {
	// Excel memangkas sel kosong di ujung baris; sisanya dianggap nol.
	row := []string{"CUST01", "CUST02", "BARANG", "120"}

	_, _, barang, err := parseBarangCells(row)
	require.NoError(t, err)
	assert.Equal(t, 120.0, barang.Panjang)
	assert.Zero(t, barang.M3PP)
	assert.False(t, barang.HasTax)
}

func TestParseBarangCellsHasTaxVariants(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"YES", true},
		{"yes", true},
		{"1", true},
		{"NO", false},
		{"0", false},
		{"", false},
	}

	for _, tc := range cases {
		row := validBarangRow()
		row[16] = tc.value

		_, _, barang, err := parseBarangCells(row)
		require.NoError(t, err)
		assert.Equal(t, tc.want, barang.HasTax, "HAS_TAX %q", tc.value)
	}
}

func TestIsBlankBarangRow(t *testing.T) {
	assert.True(t, isBlankBarangRow(nil))
	assert.True(t, isBlankBarangRow([]string{}))
	assert.True(t, isBlankBarangRow([]string{"   ", "CUST02", "BARANG"}))
	assert.False(t, isBlankBarangRow([]string{"CUST01"}))
}
