package costing

import (
	"strings"

	"freight-app/models"
)

const (
	BucketPOL = "POL"
	BucketPOD = "POD"
)

// Alias home port. Delivery kosong juga dianggap home port (biaya POL).
// Daftar tertutup, sengaja tidak dibuat konfigurasi: data lama bergantung padanya.
var homePortAliases = []string{"surabaya", "sby", "sub"}

type categoryRule struct {
	Name     string
	Keywords []string
}

// Urutan rule menentukan prioritas pencocokan; entri yang tidak cocok
// jatuh ke kategori "Other" bucket-nya, tidak pernah dibuang.
var polRules = []categoryRule{
	{Name: "THC / LOLO / Seal / Doc / Cleaning", Keywords: []string{"thc", "lolo", "lift", "seal", "doc", "cleaning", "bersih"}},
	{Name: "Freight / LSS", Keywords: []string{"freight", "lss", "low sulphur"}},
	{Name: "Trucking", Keywords: []string{"truck", "angkut"}},
	{Name: "Operations", Keywords: []string{"ops", "operasional", "operation"}},
}

var podRules = []categoryRule{
	// Forklift dicek sebelum THC/LOLO karena "forklift" mengandung "lift".
	{Name: "Forklift", Keywords: []string{"forklift"}},
	{Name: "THC / LOLO / Relocation", Keywords: []string{"thc", "lolo", "lift", "relokasi", "relocation"}},
	{Name: "Trucking / Dooring", Keywords: []string{"truck", "dooring", "angkut"}},
	{Name: "Labor", Keywords: []string{"buruh", "labor", "kuli"}},
}

const (
	CategoryOtherPOL = "Other POL"
	CategoryOtherPOD = "Other POD"
)

// IsHomePort: delivery kosong atau mengandung alias home port berarti leg asal.
func IsHomePort(delivery string) bool {
	d := strings.ToLower(strings.TrimSpace(delivery))
	if d == "" {
		return true
	}
	for _, alias := range homePortAliases {
		if strings.Contains(d, alias) {
			return true
		}
	}
	return false
}

// Classify menentukan bucket POL/POD dari lokasi delivery dan kategori
// dari kata kunci di keterangan. Setiap entri selalu mendapat tepat satu
// pasangan (bucket, kategori).
func Classify(delivery, keterangan string) (string, string) {
	desc := strings.ToLower(keterangan)

	if IsHomePort(delivery) {
		for _, rule := range polRules {
			for _, kw := range rule.Keywords {
				if strings.Contains(desc, kw) {
					return BucketPOL, rule.Name
				}
			}
		}
		return BucketPOL, CategoryOtherPOL
	}

	for _, rule := range podRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return BucketPOD, rule.Name
			}
		}
	}
	return BucketPOD, CategoryOtherPOD
}

// CostLine adalah satu entri biaya yang sudah diklasifikasi dan dikalikan
// dengan jumlah container size class-nya.
type CostLine struct {
	Bucket     string  `json:"bucket"`
	Category   string  `json:"category"`
	Keterangan string  `json:"keterangan"`
	Delivery   string  `json:"delivery"`
	SizeClass  int     `json:"size_class"`
	Multiplier int     `json:"multiplier"`
	UnitCost   float64 `json:"unit_cost"`
	TotalCost  float64 `json:"total_cost"`
}

type CostBreakdown struct {
	Lines      []CostLine `json:"lines"`
	PolTotal   float64    `json:"pol_total"`
	PodTotal   float64    `json:"pod_total"`
	GrandTotal float64    `json:"grand_total"`
}

// BuildBreakdown mengklasifikasi semua entri biaya dan menerapkan pengali
// jumlah container per size class. Entri tanpa token ukuran (atau ukuran yang
// tidak ada di grup) dihitung sekali ("1 invoice").
func BuildBreakdown(entries []models.DeliveryCost, sizes SizeCount) CostBreakdown {
	breakdown := CostBreakdown{Lines: make([]CostLine, 0, len(entries))}

	for _, entry := range entries {
		bucket, category := Classify(entry.Delivery, entry.Keterangan)

		size := DetectSize(entry.Keterangan)
		multiplier := 1
		if size != 0 && sizes.CountFor(size) > 0 {
			multiplier = sizes.CountFor(size)
		}

		line := CostLine{
			Bucket:     bucket,
			Category:   category,
			Keterangan: entry.Keterangan,
			Delivery:   entry.Delivery,
			SizeClass:  size,
			Multiplier: multiplier,
			UnitCost:   entry.Biaya,
			TotalCost:  entry.Biaya * float64(multiplier),
		}
		breakdown.Lines = append(breakdown.Lines, line)

		if bucket == BucketPOL {
			breakdown.PolTotal += line.TotalCost
		} else {
			breakdown.PodTotal += line.TotalCost
		}
	}

	breakdown.GrandTotal = breakdown.PolTotal + breakdown.PodTotal
	return breakdown
}
