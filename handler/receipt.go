package handler

import (
	"errors"
	"fmt"

	"movieflix/constants"
	"movieflix/database"
	"movieflix/helper"
	"movieflix/model"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMyReceipts lists the caller's receipts, newest first.
func GetMyReceipts(c *fiber.Ctx) error {
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, 401, "Missing token", nil)
	}

	var receipts []model.Receipt
	if err := database.DB.
		Preload("Seats").
		Where("customer_id = ?", claim.CustomerId).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(200).JSON(receipts)
}

// findOwnedReceipt loads the receipt from the path id and enforces ownership.
// On failure the response is already written and the receipt is nil.
func findOwnedReceipt(c *fiber.Ctx) (*model.Receipt, error) {
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return nil, utils.ErrorResponse(c, 401, "Missing token", nil)
	}
	receiptId, ok := c.Locals("inputId").(uint)
	if !ok {
		return nil, utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var receipt model.Receipt
	if err := database.DB.Preload("Seats").First(&receipt, receiptId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, 404, constants.RECEIPT_NOT_FOUND, nil)
		}
		return nil, utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	if receipt.CustomerId != claim.CustomerId {
		return nil, utils.ErrorResponse(c, 403, constants.ACCESS_DENIED, nil)
	}
	return &receipt, nil
}

func GetReceiptById(c *fiber.Ctx) error {
	receipt, err := findOwnedReceipt(c)
	if receipt == nil {
		return err
	}
	return c.Status(200).JSON(receipt)
}

// GetReceiptQRCode renders the receipt number as a PNG QR code for display at
// the counter.
func GetReceiptQRCode(c *fiber.Ctx) error {
	receipt, err := findOwnedReceipt(c)
	if receipt == nil {
		return err
	}

	content := fmt.Sprintf("%s|%s|%s", receipt.ReceiptNumber, receipt.MovieTitle, receipt.TransactionId)
	png, qrErr := utils.GenerateQRCode(content, 256)
	if qrErr != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, qrErr)
	}

	c.Set("Content-Type", "image/png")
	return c.Status(200).Send(png)
}
