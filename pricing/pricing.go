package pricing

import (
	"fmt"

	"freight-app/models"
)

// Tarif pajak tetap; bukan konfigurasi runtime.
const (
	PpnRate   = 0.011
	Pph23Rate = 0.02
)

// Kebijakan saat penerima barang tidak bisa di-resolve ketika membuat record pajak.
type MissingReceiverPolicy string

const (
	DegradeToUnknown MissingReceiverPolicy = "degrade_to_unknown"
	FailOnMissing    MissingReceiverPolicy = "fail"

	// OnMissingReceiver dipakai engine penempatan. Nama penerima hanya snapshot
	// audit di record pajak, jadi default-nya tidak menggagalkan penempatan.
	OnMissingReceiver = DegradeToUnknown

	UnknownReceiverName = "Unknown"
)

// MissingRateError menandakan barang tidak punya tarif untuk kombinasi
// satuan/door yang diminta. Caller tidak boleh substitusi nol.
type MissingRateError struct {
	BarangID uint
	Satuan   string
	Door     string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("barang %d has no rate for %s/%s", e.BarangID, e.Satuan, e.Door)
}

// ResolvePrice memilih tarif barang untuk kombinasi satuan dan door type,
// lalu menghitung total baris. Murni, tanpa efek samping.
func ResolvePrice(barang *models.Barang, satuan, door string, qty int) (float64, float64, error) {
	if qty <= 0 {
		return 0, 0, fmt.Errorf("qty colli must be positive, got %d", qty)
	}

	rate, ok := barang.RateFor(satuan, door)
	if !ok {
		return 0, 0, &MissingRateError{BarangID: barang.ID, Satuan: satuan, Door: door}
	}

	return rate, rate * float64(qty), nil
}

type TaxAmounts struct {
	Dpp      float64 `json:"dpp"`
	Ppn      float64 `json:"ppn"`
	Pph23    float64 `json:"pph23"`
	TotalTax float64 `json:"total_tax"`
}

// ComputeTax menghitung komponen PPN dan PPH23 dari total baris.
func ComputeTax(lineTotal float64) TaxAmounts {
	ppn := lineTotal * PpnRate
	pph23 := lineTotal * Pph23Rate
	return TaxAmounts{
		Dpp:      lineTotal,
		Ppn:      ppn,
		Pph23:    pph23,
		TotalTax: ppn + pph23,
	}
}
