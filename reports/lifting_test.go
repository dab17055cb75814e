package reports

import (
	"testing"

	"freight-app/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLiftingReport(t *testing.T) {
	inputs := []LiftingInput{
		{
			Container:    models.Container{RefJoa: "JOA-020", Party: "1X20"},
			EtdSub:       "2025-06-10",
			InvoiceValue: 8000000,
			Costs: []models.DeliveryCost{
				{Delivery: "", Keterangan: "THC Surabaya", Biaya: 3000000},
			},
		},
		{
			Container:    models.Container{RefJoa: "JOA-020", Party: "1X20"},
			EtdSub:       "2025-06-10",
			InvoiceValue: 2000000,
			Costs: []models.DeliveryCost{
				{Delivery: "Jakarta", Keterangan: "Trucking Port-City", Biaya: 1600000},
			},
		},
		{
			Container:    models.Container{RefJoa: "JOA-021", Party: "1X40"},
			EtdSub:       "2025-06-12",
			InvoiceValue: 5000000,
			Costs:        nil,
		},
	}

	report := BuildLiftingReport("2025-06-01", "2025-06-30", inputs)

	assert.Equal(t, "2025-06-01", report.StartDate)
	assert.Len(t, report.Groups, 2)

	first := report.Groups[0]
	assert.Equal(t, "JOA-020", first.RefJoa)
	assert.Equal(t, "2025-06-10", first.EtdSub)
	assert.Equal(t, 2, first.Sizes.C20)
	assert.Equal(t, 10000000.0, first.InvoiceValue)
	assert.Equal(t, 4600000.0, first.TotalCost)
	assert.Equal(t, 5400000.0, first.Profit)

	second := report.Groups[1]
	assert.Equal(t, "JOA-021", second.RefJoa)
	assert.Equal(t, 5000000.0, second.Profit)

	assert.Equal(t, 10400000.0, report.TotalProfit)
}

func TestBuildLiftingReportMissingEtdGetsPlaceholder(t *testing.T) {
	inputs := []LiftingInput{
		{Container: models.Container{RefJoa: "JOA-030"}, EtdSub: "", InvoiceValue: 100},
	}

	report := BuildLiftingReport("2025-01-01", "2025-12-31", inputs)

	assert.Len(t, report.Groups, 1)
	assert.Equal(t, UnknownPlaceholder, report.Groups[0].EtdSub)
}

func TestBuildLiftingReportGroupsSortedByEtdThenRef(t *testing.T) {
	inputs := []LiftingInput{
		{Container: models.Container{RefJoa: "JOA-B"}, EtdSub: "2025-06-15"},
		{Container: models.Container{RefJoa: "JOA-A"}, EtdSub: "2025-06-15"},
		{Container: models.Container{RefJoa: "JOA-C"}, EtdSub: "2025-06-01"},
	}

	report := BuildLiftingReport("2025-06-01", "2025-06-30", inputs)

	assert.Equal(t, "JOA-C", report.Groups[0].RefJoa)
	assert.Equal(t, "JOA-A", report.Groups[1].RefJoa)
	assert.Equal(t, "JOA-B", report.Groups[2].RefJoa)
}

func TestBuildLiftingReportEmpty(t *testing.T) {
	report := BuildLiftingReport("2025-06-01", "2025-06-30", nil)

	assert.Empty(t, report.Groups)
	assert.NotNil(t, report.Groups)
	assert.Zero(t, report.TotalProfit)
}
