package model

import "time"

type Movie struct {
	DTO
	Title       string     `gorm:"not null;index" validate:"required" json:"title"`
	Description string     `gorm:"not null;type:text" validate:"required" json:"description"`
	Duration    string     `gorm:"not null" validate:"required" json:"duration"` // e.g. "2h 28m"
	Genre       string     `gorm:"not null;index" validate:"required" json:"genre"`
	Rating      float64    `gorm:"not null" validate:"required,gte=1,lte=10" json:"rating"`
	Image       string     `gorm:"not null" validate:"required,url" json:"image"`
	Trailer     string     `json:"trailer"`
	Cast        string     `gorm:"type:text" json:"cast"` // comma-joined display string
	Director    string     `json:"director"`
	Language    string     `json:"language"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Slug        string     `gorm:"uniqueIndex" json:"slug"`

	ShowTimes []ShowTime `gorm:"foreignKey:MovieId;constraint:OnDelete:CASCADE" json:"showTimes"`
}

type ShowTime struct {
	DTO
	MovieId        uint      `gorm:"not null;index" json:"movieId"`
	Time           string    `gorm:"not null" validate:"required" json:"time"` // display string, e.g. "6:00 PM"
	Date           time.Time `gorm:"not null" validate:"required" json:"date"`
	Price          float64   `gorm:"not null" validate:"required,gt=0" json:"price"`
	AvailableSeats int       `gorm:"not null" json:"availableSeats"`
	Status         string    `gorm:"not null;default:'OPEN'" json:"status"`

	BookedSeats []BookedSeat `gorm:"foreignKey:ShowTimeId;constraint:OnDelete:CASCADE" json:"bookedSeats"`
}

// BookedSeat is the source of truth for seat conflicts. The composite unique
// index makes the seat commit a single conditional write: a concurrent commit
// for the same seat fails on insert instead of silently double-booking.
type BookedSeat struct {
	DTO
	ShowTimeId uint   `gorm:"not null;uniqueIndex:idx_showtime_seat" json:"showTimeId"`
	Row        string `gorm:"not null;size:4;uniqueIndex:idx_showtime_seat" json:"row"`
	Number     int    `gorm:"not null;uniqueIndex:idx_showtime_seat" json:"number"`
	CustomerId uint   `gorm:"not null" json:"customerId"`
}

type ShowTimeInput struct {
	Time  string  `json:"time" validate:"required"`
	Date  string  `json:"date" validate:"required"` // YYYY-MM-DD
	Price float64 `json:"price" validate:"required,gt=0"`
}

type CreateMovieInput struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Duration    string          `json:"duration" validate:"required"`
	Genre       string          `json:"genre" validate:"required"`
	Rating      float64         `json:"rating" validate:"required,gte=1,lte=10"`
	Image       string          `json:"image" validate:"required,url"`
	Trailer     string          `json:"trailer" validate:"omitempty,url"`
	Cast        []string        `json:"cast"`
	Director    string          `json:"director"`
	Language    string          `json:"language"`
	ReleaseDate string          `json:"releaseDate" validate:"omitempty"`
	ShowTimes   []ShowTimeInput `json:"showTimes" validate:"omitempty,dive"`
}
