package reports

import (
	"testing"

	"freight-app/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildContainerSummary(t *testing.T) {
	container := models.Container{NoContainer: "TEMU1234567", RefJoa: "JOA-001"}
	container.ID = 5
	kapal := &models.Kapal{EtdSub: "2025-06-10", Destination: "Makassar"}

	rows := []AssignmentRow{
		{ContainerID: 5, BarangID: 1, ReceiverID: 10, ReceiverName: "PT Alpha", QtyColli: 3, Volume: 1.5, Berat: 200, Total: 2550000, OrderKey: "20250610080000000"},
		{ContainerID: 5, BarangID: 2, ReceiverID: 11, ReceiverName: "CV Beta", QtyColli: 1, Volume: 0.8, Berat: 90, Total: 800000, OrderKey: "20250610080000001"},
		{ContainerID: 5, BarangID: 3, ReceiverID: 10, ReceiverName: "PT Alpha", QtyColli: 2, Volume: 1.0, Berat: 150, Total: 1700000, OrderKey: "20250610080000002"},
	}

	summary := BuildContainerSummary(container, kapal, rows)

	assert.Equal(t, uint(5), summary.ContainerID)
	assert.Equal(t, "2025-06-10", summary.Etd)
	assert.Equal(t, "Makassar", summary.Destination)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 6, summary.TotalColli)
	assert.Equal(t, 5050000.0, summary.TotalValue)

	// Urutan kemunculan pertama dipertahankan.
	assert.Len(t, summary.Customers, 2)
	assert.Equal(t, "PT Alpha", summary.Customers[0].ReceiverName)
	assert.Equal(t, 2, summary.Customers[0].ItemCount)
	assert.Equal(t, 5, summary.Customers[0].TotalColli)
	assert.Equal(t, 4250000.0, summary.Customers[0].Value)
	assert.Equal(t, "CV Beta", summary.Customers[1].ReceiverName)
}

func TestBuildContainerSummaryOrphanContainer(t *testing.T) {
	// Kapal sudah dihapus: laporan tetap jalan dengan placeholder.
	container := models.Container{NoContainer: "TGHU7654321", RefJoa: "JOA-002"}

	summary := BuildContainerSummary(container, nil, nil)

	assert.Equal(t, UnknownPlaceholder, summary.Etd)
	assert.Equal(t, UnknownPlaceholder, summary.Destination)
	assert.Zero(t, summary.TotalValue)
	assert.Empty(t, summary.Customers)
	assert.NotNil(t, summary.Customers)
}
