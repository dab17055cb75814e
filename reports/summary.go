package reports

import (
	"freight-app/models"
)

// Placeholder untuk container yatim (kapal sudah dihapus); laporan tetap jalan.
const UnknownPlaceholder = "unknown"

// AssignmentRow satu baris penempatan barang yang sudah di-join dengan
// nama penerima. Diisi repository, diolah builder murni di package ini.
type AssignmentRow struct {
	ContainerID  uint    `json:"container_id"`
	BarangID     uint    `json:"barang_id"`
	BarangName   string  `json:"barang_name"`
	ReceiverID   uint    `json:"receiver_id"`
	ReceiverName string  `json:"receiver_name"`
	QtyColli     int     `json:"qty_colli"`
	Volume       float64 `json:"volume"`
	Berat        float64 `json:"berat"`
	Total        float64 `json:"total"`
	OrderKey     string  `json:"order_key"`
}

type CustomerBreakdown struct {
	ReceiverID   uint    `json:"receiver_id"`
	ReceiverName string  `json:"receiver_name"`
	ItemCount    int     `json:"item_count"`
	TotalColli   int     `json:"total_colli"`
	Volume       float64 `json:"volume"`
	Berat        float64 `json:"berat"`
	Value        float64 `json:"value"`
}

type ContainerSummary struct {
	ContainerID uint                `json:"container_id"`
	NoContainer string              `json:"no_container"`
	RefJoa      string              `json:"ref_joa"`
	Etd         string              `json:"etd"`
	Destination string              `json:"destination"`
	ItemCount   int                 `json:"item_count"`
	TotalColli  int                 `json:"total_colli"`
	TotalValue  float64             `json:"total_value"`
	Customers   []CustomerBreakdown `json:"customers"`
}

// BuildContainerSummary menghitung nilai total container dan breakdown per
// penerima. Kapal nil (container yatim) tidak menggagalkan laporan.
func BuildContainerSummary(container models.Container, kapal *models.Kapal, rows []AssignmentRow) ContainerSummary {
	summary := ContainerSummary{
		ContainerID: container.ID,
		NoContainer: container.NoContainer,
		RefJoa:      container.RefJoa,
		Etd:         UnknownPlaceholder,
		Destination: UnknownPlaceholder,
		Customers:   []CustomerBreakdown{},
	}

	if kapal != nil {
		summary.Etd = kapal.EtdSub
		summary.Destination = kapal.Destination
	}

	summary.Customers = groupByReceiver(rows)
	for _, row := range rows {
		summary.ItemCount++
		summary.TotalColli += row.QtyColli
		summary.TotalValue += row.Total
	}

	return summary
}

func groupByReceiver(rows []AssignmentRow) []CustomerBreakdown {
	grouped := map[uint]*CustomerBreakdown{}
	order := []uint{}

	for _, row := range rows {
		entry, ok := grouped[row.ReceiverID]
		if !ok {
			entry = &CustomerBreakdown{ReceiverID: row.ReceiverID, ReceiverName: row.ReceiverName}
			grouped[row.ReceiverID] = entry
			order = append(order, row.ReceiverID)
		}
		entry.ItemCount++
		entry.TotalColli += row.QtyColli
		entry.Volume += row.Volume
		entry.Berat += row.Berat
		entry.Value += row.Total
	}

	result := make([]CustomerBreakdown, 0, len(order))
	for _, id := range order {
		result = append(result, *grouped[id])
	}
	return result
}
