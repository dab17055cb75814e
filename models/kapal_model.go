package models

import "gorm.io/gorm"

type Kapal struct {
	gorm.Model
	ShippingLine string `json:"shipping_line"`
	FeederName   string `json:"feeder_name"`
	Destination  string `json:"destination"`
	EtdSub       string `json:"etd_sub"`
	ClosingTime  string `json:"closing_time"`
	OpenDate     string `json:"open_date"`
	FullDate     string `json:"full_date"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Containers []Container `json:"containers" gorm:"foreignKey:KapalID;references:ID"`
}
