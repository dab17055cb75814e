package costing

import (
	"testing"

	"freight-app/models"

	"github.com/stretchr/testify/assert"
)

func TestIsHomePort(t *testing.T) {
	assert.True(t, IsHomePort(""))
	assert.True(t, IsHomePort("Surabaya"))
	assert.True(t, IsHomePort("SBY"))
	assert.True(t, IsHomePort("Depo SUB"))
	assert.False(t, IsHomePort("Jakarta"))
	assert.False(t, IsHomePort("Makassar"))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		delivery   string
		keterangan string
		bucket     string
		category   string
	}{
		{"", "THC Surabaya", BucketPOL, "THC / LOLO / Seal / Doc / Cleaning"},
		{"Surabaya", "Biaya Seal Container", BucketPOL, "THC / LOLO / Seal / Doc / Cleaning"},
		{"SBY", "Ocean Freight", BucketPOL, "Freight / LSS"},
		{"", "Trucking Pabrik", BucketPOL, "Trucking"},
		{"Surabaya", "Biaya Operasional Lapangan", BucketPOL, "Operations"},
		{"", "Parkir Depo", BucketPOL, CategoryOtherPOL},
		{"Jakarta", "LOLO Pelabuhan", BucketPOD, "THC / LOLO / Relocation"},
		{"Jakarta", "Trucking Port-City", BucketPOD, "Trucking / Dooring"},
		{"Makassar", "Sewa Forklift", BucketPOD, "Forklift"},
		{"Jakarta", "Upah Buruh Bongkar", BucketPOD, "Labor"},
		{"Jakarta", "Administrasi Gudang", BucketPOD, CategoryOtherPOD},
	}

	for _, tc := range cases {
		bucket, category := Classify(tc.delivery, tc.keterangan)
		assert.Equal(t, tc.bucket, bucket, "%s / %s", tc.delivery, tc.keterangan)
		assert.Equal(t, tc.category, category, "%s / %s", tc.delivery, tc.keterangan)
	}
}

func TestBuildBreakdownBucketTotals(t *testing.T) {
	entries := []models.DeliveryCost{
		{Delivery: "", Keterangan: "THC Surabaya", Biaya: 5000000},
		{Delivery: "Jakarta", Keterangan: "Trucking Port-City", Biaya: 1600000},
	}

	breakdown := BuildBreakdown(entries, SizeCount{})

	assert.Equal(t, 5000000.0, breakdown.PolTotal)
	assert.Equal(t, 1600000.0, breakdown.PodTotal)
	assert.Equal(t, 6600000.0, breakdown.GrandTotal)
	assert.Len(t, breakdown.Lines, 2)
}

func TestBuildBreakdownSizeMultiplier(t *testing.T) {
	entries := []models.DeliveryCost{
		{Delivery: "Jakarta", Keterangan: "LOLO 20ft", Biaya: 250000},
	}

	breakdown := BuildBreakdown(entries, SizeCount{C20: 3})

	assert.Equal(t, 3, breakdown.Lines[0].Multiplier)
	assert.Equal(t, 750000.0, breakdown.Lines[0].TotalCost)
	assert.Equal(t, 750000.0, breakdown.PodTotal)
}

func TestBuildBreakdownSizeNotInGroupCountsOnce(t *testing.T) {
	// Keterangan menyebut 40 tapi grup hanya punya 20, dihitung satu invoice.
	entries := []models.DeliveryCost{
		{Delivery: "Jakarta", Keterangan: "THC 40ft", Biaya: 400000},
	}

	breakdown := BuildBreakdown(entries, SizeCount{C20: 2})

	assert.Equal(t, 1, breakdown.Lines[0].Multiplier)
	assert.Equal(t, 400000.0, breakdown.Lines[0].TotalCost)
}

func TestBuildBreakdownPreservesEverySumInOneBucket(t *testing.T) {
	entries := []models.DeliveryCost{
		{Delivery: "", Keterangan: "entri aneh tanpa kata kunci", Biaya: 123},
		{Delivery: "Bandung", Keterangan: "entri aneh lain", Biaya: 456},
	}

	breakdown := BuildBreakdown(entries, SizeCount{})

	// Tidak ada entri yang hilang: semua masuk salah satu bucket.
	assert.Equal(t, breakdown.GrandTotal, breakdown.PolTotal+breakdown.PodTotal)
	assert.Equal(t, 579.0, breakdown.GrandTotal)
}

func TestBuildBreakdownEmpty(t *testing.T) {
	breakdown := BuildBreakdown(nil, SizeCount{})

	assert.Empty(t, breakdown.Lines)
	assert.Zero(t, breakdown.GrandTotal)
}
