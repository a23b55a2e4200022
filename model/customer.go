package model

type Customer struct {
	DTO
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Email    string `gorm:"not null;uniqueIndex" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

type RegisterCustomerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
