package configs

import (
	"log"

	"github.com/ja-cob-s/cantina/entity"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hash),
		Admin:    true,
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a starter menu the first time the database comes up.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Chips and Salsa", Course: "Appetizer", Description: "Fresh tortilla chips with house salsa roja", Price: "4.50"},
		{Name: "Queso Fundido", Course: "Appetizer", Description: "Melted cheese with chorizo and warm tortillas", Price: "7.25"},
		{Name: "Carne Asada Tacos", Course: "Entree", Description: "Three grilled steak tacos with onion and cilantro", Price: "11.00"},
		{Name: "Enchiladas Verdes", Course: "Entree", Description: "Chicken enchiladas in tomatillo salsa", Price: "10.00"},
		{Name: "Chile Relleno", Course: "Entree", Description: "Roasted poblano stuffed with cheese", Price: "9.75"},
		{Name: "Flan", Course: "Dessert", Description: "Classic caramel custard", Price: "5.00"},
		{Name: "Horchata", Course: "Beverage", Description: "Sweet rice and cinnamon drink", Price: "3.00"},
	}
	return db.Create(&items).Error
}
