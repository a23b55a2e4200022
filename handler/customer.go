package handler

import (
	"errors"
	"strings"

	"movieflix/constants"
	"movieflix/database"
	"movieflix/helper"
	"movieflix/model"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func RegisterCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var existing model.Customer
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, 409, constants.EMAIL_TAKEN, nil)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	customer := new(model.Customer)
	copier.Copy(customer, &input)
	customer.Password = hash

	if err := db.Create(customer).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponse(c, 409, constants.EMAIL_TAKEN, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateToken(*customer)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, 201, fiber.Map{
		"customer": customer,
		"token":    token,
	})
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var customer model.Customer
	if err := database.DB.Where("email = ?", input.Email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 401, constants.INVALID_LOGIN, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CheckPasswordHash(input.Password, customer.Password) {
		return utils.ErrorResponse(c, 401, constants.INVALID_LOGIN, nil)
	}

	token, err := helper.GenerateToken(customer)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"customer": customer,
		"token":    token,
	})
}

func Me(c *fiber.Ctx) error {
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, 401, "Missing token", nil)
	}

	var customer model.Customer
	if err := database.DB.First(&customer, claim.CustomerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.CUSTOMER_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, 200, customer)
}
