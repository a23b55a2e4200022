package model

type Booking struct {
	DTO
	CustomerId    uint    `gorm:"not null;index" json:"customerId"`
	MovieId       uint    `gorm:"not null;index" json:"movieId"`
	ShowTimeId    uint    `gorm:"not null;index" json:"showTimeId"`
	TotalAmount   float64 `gorm:"not null" json:"totalAmount"`
	BookingStatus string  `gorm:"not null;default:'pending'" json:"bookingStatus"`

	RazorpayOrderId   string `gorm:"index" json:"razorpayOrderId"`
	RazorpayPaymentId string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`

	Seats []BookingSeat `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"seats"`
	Movie Movie         `gorm:"foreignKey:MovieId" json:"movie"`
}

type BookingSeat struct {
	DTO
	BookingId uint   `gorm:"not null;index" json:"bookingId"`
	Row       string `gorm:"not null;size:4" json:"row"`
	Number    int    `gorm:"not null" json:"number"`
}

type SeatInput struct {
	Row    string `json:"row" validate:"required,max=4"`
	Number int    `json:"number" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	MovieId     uint        `json:"movieId" validate:"required,gt=0"`
	ShowTimeId  uint        `json:"showTimeId" validate:"required,gt=0"`
	Seats       []SeatInput `json:"seats" validate:"required,min=1,dive"`
	TotalAmount float64     `json:"totalAmount" validate:"required,gt=0"`
}

type VerifyPaymentInput struct {
	RazorpayOrderId   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentId string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
	BookingId         uint   `json:"bookingId" validate:"required,gt=0"`
}
