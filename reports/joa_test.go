package reports

import (
	"testing"

	"freight-app/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildJoaStatementMargin(t *testing.T) {
	containers := []models.Container{
		{RefJoa: "JOA-010", Party: "2X20"},
		{RefJoa: "JOA-010", Party: "1X40'HC"},
	}

	rows := []AssignmentRow{
		{ReceiverName: "PT Alpha", QtyColli: 4, Volume: 3.2, Berat: 400, Total: 6000000},
		{ReceiverName: "CV Beta", QtyColli: 2, Volume: 1.1, Berat: 150, Total: 4000000},
	}

	costs := []models.DeliveryCost{
		{Delivery: "", Keterangan: "THC Surabaya", Biaya: 5000000},
		{Delivery: "Jakarta", Keterangan: "Trucking Port-City", Biaya: 1600000},
	}

	statement := BuildJoaStatement("JOA-010", containers, rows, costs)

	assert.Equal(t, 2, statement.ContainerCount)
	assert.Equal(t, 2, statement.Sizes.C20)
	assert.Equal(t, 1, statement.Sizes.C40)
	assert.Equal(t, 10000000.0, statement.SalesTotal)
	assert.Equal(t, 6600000.0, statement.PurchaseTotal)
	assert.Equal(t, 3400000.0, statement.Margin)
}

func TestBuildJoaStatementSalesSortedByReceiver(t *testing.T) {
	rows := []AssignmentRow{
		{ReceiverName: "Zulu", Total: 100},
		{ReceiverName: "Alpha", Total: 200},
		{ReceiverName: "Zulu", Total: 300},
	}

	statement := BuildJoaStatement("JOA-011", nil, rows, nil)

	assert.Len(t, statement.Sales, 2)
	assert.Equal(t, "Alpha", statement.Sales[0].ReceiverName)
	assert.Equal(t, "Zulu", statement.Sales[1].ReceiverName)
	assert.Equal(t, 400.0, statement.Sales[1].Value)
	assert.Equal(t, 2, statement.Sales[1].ItemCount)
}

func TestBuildJoaStatementEmptyGroup(t *testing.T) {
	// Grup tanpa container dan tanpa baris tetap laporan valid.
	statement := BuildJoaStatement("JOA-999", nil, nil, nil)

	assert.Equal(t, "JOA-999", statement.RefJoa)
	assert.Zero(t, statement.ContainerCount)
	assert.Empty(t, statement.Sales)
	assert.NotNil(t, statement.Sales)
	assert.Zero(t, statement.SalesTotal)
	assert.Zero(t, statement.PurchaseTotal)
	assert.Zero(t, statement.Margin)
}
