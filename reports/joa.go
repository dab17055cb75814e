package reports

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"freight-app/costing"
	"freight-app/models"
)

// SalesRow satu baris sales invoice JOA: agregat per penerima.
type SalesRow struct {
	ReceiverName string  `json:"receiver_name"`
	ItemCount    int     `json:"item_count"`
	TotalColli   int     `json:"total_colli"`
	Volume       float64 `json:"volume"`
	Berat        float64 `json:"berat"`
	Value        float64 `json:"value"`
}

type JoaStatement struct {
	RefJoa         string                `json:"ref_joa"`
	ContainerCount int                   `json:"container_count"`
	Sizes          costing.SizeCount     `json:"sizes"`
	Sales          []SalesRow            `json:"sales"`
	SalesTotal     float64               `json:"sales_total"`
	Purchase       costing.CostBreakdown `json:"purchase"`
	PurchaseTotal  float64               `json:"purchase_total"`
	Margin         float64               `json:"margin"`
}

// BuildJoaStatement menyusun laporan Job Order Account: sales invoice per
// penerima, purchase invoice POL/POD, dan margin. Grup tanpa baris sama
// sekali menghasilkan laporan kosong yang valid.
func BuildJoaStatement(ref string, containers []models.Container, rows []AssignmentRow, costs []models.DeliveryCost) JoaStatement {
	statement := JoaStatement{
		RefJoa:         ref,
		ContainerCount: len(containers),
		Sales:          []SalesRow{},
	}

	for _, container := range containers {
		statement.Sizes = statement.Sizes.Add(costing.ParseParty(container.Party))
	}

	grouped := map[string]*SalesRow{}
	for _, row := range rows {
		entry, ok := grouped[row.ReceiverName]
		if !ok {
			entry = &SalesRow{ReceiverName: row.ReceiverName}
			grouped[row.ReceiverName] = entry
		}
		entry.ItemCount++
		entry.TotalColli += row.QtyColli
		entry.Volume += row.Volume
		entry.Berat += row.Berat
		entry.Value += row.Total
	}

	names := maps.Keys(grouped)
	slices.Sort(names)
	for _, name := range names {
		statement.Sales = append(statement.Sales, *grouped[name])
		statement.SalesTotal += grouped[name].Value
	}

	statement.Purchase = costing.BuildBreakdown(costs, statement.Sizes)
	statement.PurchaseTotal = statement.Purchase.GrandTotal
	statement.Margin = statement.SalesTotal - statement.PurchaseTotal

	return statement
}
