package database

import (
	"fmt"
	"strconv"

	"movieflix/config"
	"movieflix/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Customer{},
		&model.Movie{},
		&model.ShowTime{},
		&model.BookedSeat{},
		&model.Booking{},
		&model.BookingSeat{},
		&model.Receipt{},
		&model.ReceiptSeat{},
	)
	fmt.Println("Database Migrated")
}
