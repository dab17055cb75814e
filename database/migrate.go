package database

import (
	"freight-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Customer{},
		&models.Sender{},
		&models.Kapal{},
		&models.Container{},
		&models.Barang{},
		&models.ContainerDetail{},
		&models.BarangTax{},
		&models.DeliveryCost{},
		&models.FileLog{},
	)
}
