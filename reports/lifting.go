package reports

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"freight-app/costing"
	"freight-app/models"
)

// LiftingInput data satu container yang sudah dilengkapi repository:
// ETD subline kapal pemilik, nilai invoice, dan entri biaya delivery.
type LiftingInput struct {
	Container    models.Container
	EtdSub       string
	InvoiceValue float64
	Costs        []models.DeliveryCost
}

type LiftingGroup struct {
	RefJoa       string                `json:"ref_joa"`
	EtdSub       string                `json:"etd_sub"`
	Sizes        costing.SizeCount     `json:"sizes"`
	InvoiceValue float64               `json:"invoice_value"`
	Costs        costing.CostBreakdown `json:"costs"`
	TotalCost    float64               `json:"total_cost"`
	Profit       float64               `json:"profit"`
}

type LiftingReport struct {
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Groups      []LiftingGroup `json:"groups"`
	TotalProfit float64        `json:"total_profit"`
}

// BuildLiftingReport mengelompokkan container per (ref JOA, ETD subline) dan
// menghitung profit = nilai invoice - total biaya per grup plus grand total.
func BuildLiftingReport(start, end string, inputs []LiftingInput) LiftingReport {
	report := LiftingReport{StartDate: start, EndDate: end, Groups: []LiftingGroup{}}

	type groupData struct {
		sizes   costing.SizeCount
		invoice float64
		costs   []models.DeliveryCost
	}

	grouped := map[[2]string]*groupData{}
	for _, input := range inputs {
		etd := input.EtdSub
		if etd == "" {
			etd = UnknownPlaceholder
		}
		key := [2]string{input.Container.RefJoa, etd}

		data, ok := grouped[key]
		if !ok {
			data = &groupData{}
			grouped[key] = data
		}
		data.sizes = data.sizes.Add(costing.ParseParty(input.Container.Party))
		data.invoice += input.InvoiceValue
		data.costs = append(data.costs, input.Costs...)
	}

	keys := maps.Keys(grouped)
	slices.SortFunc(keys, func(a, b [2]string) int {
		if a[1] != b[1] {
			return strings.Compare(a[1], b[1])
		}
		return strings.Compare(a[0], b[0])
	})

	for _, key := range keys {
		data := grouped[key]
		breakdown := costing.BuildBreakdown(data.costs, data.sizes)

		group := LiftingGroup{
			RefJoa:       key[0],
			EtdSub:       key[1],
			Sizes:        data.sizes,
			InvoiceValue: data.invoice,
			Costs:        breakdown,
			TotalCost:    breakdown.GrandTotal,
			Profit:       data.invoice - breakdown.GrandTotal,
		}
		report.Groups = append(report.Groups, group)
		report.TotalProfit += group.Profit
	}

	return report
}
