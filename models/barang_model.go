package models

import "gorm.io/gorm"

// Satuan harga yang dipakai saat barang dimuat ke container.
const (
	SatuanM3        = "m3"
	SatuanKg        = "kg"
	SatuanContainer = "container"
)

// Jenis layanan (door type): pickup pelabuhan, port-to-door, door-to-door.
const (
	DoorPP = "pp"
	DoorPD = "pd"
	DoorDD = "dd"
)

type Barang struct {
	gorm.Model
	SenderID      uint    `json:"sender_id"`
	ReceiverID    uint    `json:"receiver_id"`
	BarangName    string  `json:"barang_name"`
	Panjang       float64 `json:"panjang"`
	Lebar         float64 `json:"lebar"`
	Tinggi        float64 `json:"tinggi"`
	Volume        float64 `json:"volume"`
	Berat         float64 `json:"berat"`
	PartContainer float64 `json:"part_container"`

	M3PP float64 `json:"m3_pp"`
	M3PD float64 `json:"m3_pd"`
	M3DD float64 `json:"m3_dd"`
	KgPP float64 `json:"kg_pp"`
	KgPD float64 `json:"kg_pd"`
	KgDD float64 `json:"kg_dd"`

	ContainerPP float64 `json:"container_pp"`
	ContainerPD float64 `json:"container_pd"`
	ContainerDD float64 `json:"container_dd"`

	HasTax bool `json:"has_tax" gorm:"default:false"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// RateFor mengembalikan tarif untuk kombinasi satuan dan door type.
// Tarif nol dianggap tidak tersedia (false), caller tidak boleh memakai nol diam-diam.
func (b *Barang) RateFor(satuan, door string) (float64, bool) {
	rates := map[[2]string]float64{
		{SatuanM3, DoorPP}:        b.M3PP,
		{SatuanM3, DoorPD}:        b.M3PD,
		{SatuanM3, DoorDD}:        b.M3DD,
		{SatuanKg, DoorPP}:        b.KgPP,
		{SatuanKg, DoorPD}:        b.KgPD,
		{SatuanKg, DoorDD}:        b.KgDD,
		{SatuanContainer, DoorPP}: b.ContainerPP,
		{SatuanContainer, DoorPD}: b.ContainerPD,
		{SatuanContainer, DoorDD}: b.ContainerDD,
	}

	rate, ok := rates[[2]string{satuan, door}]
	if !ok || rate == 0 {
		return 0, false
	}
	return rate, true
}
