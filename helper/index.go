package helper

import (
	"time"

	"movieflix/config"
	"movieflix/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues the bearer token carried on all protected routes.
func GenerateToken(customer model.Customer) (string, error) {
	claims := jwt.MapClaims{
		"customerId": customer.ID,
		"email":      customer.Email,
		"exp":        time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

// GetCustomerFromToken reads the claims parsed by middleware.Protected.
// A zero CustomerId means no authenticated customer.
func GetCustomerFromToken(c *fiber.Ctx) model.TokenClaim {
	var empty model.TokenClaim

	u := c.Locals("user")
	if u == nil {
		return empty
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return empty
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return empty
	}

	customerId, _ := claims["customerId"].(float64)
	email, _ := claims["email"].(string)

	return model.TokenClaim{
		CustomerId: uint(customerId),
		Email:      email,
	}
}
