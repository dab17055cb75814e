package models

import (
	"freight-app/types"

	"gorm.io/gorm"
)

type Container struct {
	gorm.Model
	KapalID     *uint  `json:"kapal_id"`
	Etd         string `json:"etd"`
	Party       string `json:"party"`
	NoContainer string `json:"no_container"`
	NoSeal      string `json:"no_seal"`
	RefJoa      string `json:"ref_joa"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Details       []ContainerDetail `json:"details" gorm:"foreignKey:ContainerID;references:ID"`
	DeliveryCosts []DeliveryCost    `json:"delivery_costs" gorm:"foreignKey:ContainerID;references:ID"`
}

// ContainerDetail adalah penempatan satu barang ke satu container
// beserta harga yang sudah di-resolve saat muat.
type ContainerDetail struct {
	gorm.Model
	BarangID    uint               `json:"barang_id" gorm:"index:idx_detail_order,unique"`
	ContainerID uint               `json:"container_id" gorm:"index:idx_detail_order,unique"`
	BarangTaxID *types.SnowflakeID `json:"barang_tax_id"`
	Satuan      string             `json:"satuan"`
	Door        string             `json:"door"`
	QtyColli    int                `json:"qty_colli"`
	Harga       float64            `json:"harga"`
	Total       float64            `json:"total"`
	TglMuat     string             `json:"tgl_muat"`
	// OrderKey kunci urut kronologis, unik per barang+container.
	OrderKey  string `json:"order_key" gorm:"index:idx_detail_order,unique"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type BarangTax struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	ContainerID uint              `json:"container_id"`
	BarangID    uint              `json:"barang_id"`
	Penerima    string            `json:"penerima"`
	Dpp         float64           `json:"dpp"`
	PpnRate     float64           `json:"ppn_rate"`
	Pph23Rate   float64           `json:"pph23_rate"`
	Ppn         float64           `json:"ppn"`
	Pph23       float64           `json:"pph23"`
	TotalTax    float64           `json:"total_tax"`
	CreatedBy   int
}

type DeliveryCost struct {
	gorm.Model
	ContainerID uint    `json:"container_id"`
	Delivery    string  `json:"delivery"`
	Keterangan  string  `json:"keterangan"`
	Biaya       float64 `json:"biaya"`
	TglInput    string  `json:"tgl_input"`
	CreatedBy   int
}
