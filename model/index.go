package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

type TokenClaim struct {
	CustomerId uint   `json:"customerId"`
	Email      string `json:"email"`
}
