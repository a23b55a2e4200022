package validate

import (
	"errors"

	"movieflix/constants"
	"movieflix/helper"
	"movieflix/model"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder validates the seat-hold request before any side effect runs.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		if helper.HasDuplicateSeats(input.Seats) {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, errors.New("duplicate seats in request"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// VerifyPayment validates the gateway callback payload.
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyPaymentInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
