package model

import "time"

// Receipt is the immutable confirmation written on the confirm path, exactly
// once per booking. Movie and showtime fields are denormalized for display.
type Receipt struct {
	DTO
	BookingId     uint      `gorm:"not null;uniqueIndex" json:"bookingId"`
	CustomerId    uint      `gorm:"not null;index" json:"customerId"`
	ReceiptNumber string    `gorm:"not null;uniqueIndex" json:"receiptNumber"`
	MovieTitle    string    `json:"movieTitle"`
	ShowTime      string    `json:"showTime"`
	ShowDate      time.Time `json:"showDate"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionId string    `json:"transactionId"`

	Seats []ReceiptSeat `gorm:"foreignKey:ReceiptId;constraint:OnDelete:CASCADE" json:"seats"`
}

type ReceiptSeat struct {
	DTO
	ReceiptId uint   `gorm:"not null;index" json:"receiptId"`
	Row       string `gorm:"not null;size:4" json:"row"`
	Number    int    `gorm:"not null" json:"number"`
}
