package database

import (
	"log"

	"freight-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUserMaster(db)
	SeedCustomers(db)
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash default password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@localhost",
		Role:     "admin",
	}

	var existing models.User
	if err := db.Where("username = ?", admin.Username).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			db.Create(&admin)
		}
	}
}

func SeedCustomers(db *gorm.DB) {
	customers := []models.Customer{
		{CustomerCode: "CASH", CustomerName: "CASH CUSTOMER"},
	}

	for _, c := range customers {
		var existing models.Customer
		if err := db.Where("customer_code = ?", c.CustomerCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
