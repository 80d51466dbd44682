package database

import (
	"log"

	"github.com/Gnyfrt/miracotoelektronik/internal/models"

	"gorm.io/gorm"
)

// SeedBrandNames is the set of brands inserted on first run. Matches the
// logo slugs pre-fetched by cmd/fetchlogos.
var SeedBrandNames = []string{
	"Audi", "BMW", "Chevrolet", "Citroën", "Dacia", "Fiat", "Ford",
	"Honda", "Hyundai", "Isuzu", "Iveco", "Kia", "Lada", "Land Rover",
	"Mazda", "Mercedes-Benz", "Mitsubishi", "Nissan", "Opel", "Peugeot",
	"Renault", "Seat", "Skoda", "Ssangyong", "Subaru", "Suzuki",
	"Tofaş", "Toyota", "Volkswagen", "Volvo",
}

// SeedAdminAndBrands creates the default admin user if missing and, when the
// brands table is empty, inserts the starter brand list.
func SeedAdminAndBrands(db *gorm.DB) {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			admin = models.User{
				Username: "admin",
				Password: "admin123",
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		} else {
			log.Printf("Failed to look up admin user: %v", err)
		}
	}

	var brandCount int64
	if err := db.Model(&models.Brand{}).Count(&brandCount).Error; err != nil {
		log.Printf("Failed to count brands: %v", err)
		return
	}
	if brandCount > 0 {
		return
	}

	for _, name := range SeedBrandNames {
		if err := db.Create(&models.Brand{Name: name}).Error; err != nil {
			log.Printf("Failed to seed brand %s: %v", name, err)
		}
	}
	log.Printf("Seeded %d brands.", len(SeedBrandNames))
}
