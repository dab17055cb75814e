package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() []string {
	return []string{
		"cust01", "CUST02", "SPAREPART MESIN",
		"120", "80", "100", "", "0.5", "0",
		"850000", "900000", "950000",
		"0", "0", "0",
		"0", "0", "0",
		"YES",
	}
}

func TestParseBarangRecord(t *testing.T) {
	senderCode, receiverCode, barang, err := parseBarangRecord(validRecord())

	require.NoError(t, err)
	assert.Equal(t, "CUST01", senderCode)
	assert.Equal(t, "CUST02", receiverCode)
	assert.Equal(t, "SPAREPART MESIN", barang.BarangName)
	assert.Equal(t, 850000.0, barang.M3PP)
	assert.Equal(t, 0.5, barang.Berat)
	assert.True(t, barang.HasTax)
	// Volume kosong diturunkan dari dimensi (cm3 -> m3).
	assert.InDelta(t, 0.96, barang.Volume, 0.0001)
}

func TestParseBarangRecordShortRow(t *testing.T) {
	_, _, _, err := parseBarangRecord([]string{"CUST01", "CUST02", "BARANG"})
	assert.Error(t, err)
}

func TestParseBarangRecordMissingRequiredFields(t *testing.T) {
	record := validRecord()
	record[1] = "  "

	_, _, _, err := parseBarangRecord(record)
	assert.Error(t, err)
}

func TestParseBarangRecordBadNumber(t *testing.T) {
	record := validRecord()
	record[9] = "850rb"

	_, _, _, err := parseBarangRecord(record)
	assert.ErrorContains(t, err, "850rb")
}

func TestParseBarangRecordHasTaxVariants(t *testing.T) {
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
		record := validRecord()
		record[18] = tc.value

		_, _, barang, err := parseBarangRecord(record)
		require.NoError(t, err)
		assert.Equal(t, tc.want, barang.HasTax, "HAS_TAX %q", tc.value)
	}
}
