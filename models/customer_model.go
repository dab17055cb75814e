package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	CustomerCode string `json:"customer_code" gorm:"unique"`
	CustomerName string `json:"customer_name"`
	CustAddr1    string `json:"cust_addr1"`
	CustAddr2    string `json:"cust_addr2"`
	CustCity     string `json:"cust_city"`
	CustPhone    string `json:"cust_phone"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

// Sender adalah registry perusahaan pengirim yang terpisah dari Customer.
// Barang tetap mereferensikan Customer untuk peran pengirim/penerima;
// registry ini dipertahankan sebagai master data tersendiri.
type Sender struct {
	gorm.Model
	SenderName string `json:"sender_name" gorm:"unique"`
	SenderAddr string `json:"sender_addr"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
