package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"movieflix/constants"
	"movieflix/database"
	"movieflix/helper"
	"movieflix/model"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewGateway builds the payment gateway service. Package-level so tests can
// point it at a fake gateway.
var NewGateway = helper.NewRazorpay

// CreateOrder starts a booking: checks availability, creates the gateway
// order, persists the booking as pending. Seats are only checked here, not
// locked; the commit in VerifyPayment is the correctness backstop.
func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, 401, "Missing token", nil)
	}

	db := database.DB

	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	var showTime model.ShowTime
	if err := db.Preload("BookedSeats").
		Where("id = ? AND movie_id = ?", input.ShowTimeId, movie.ID).
		First(&showTime).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.SHOWTIME_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	if showTime.Status == constants.SHOWTIME_CLOSED {
		return utils.ErrorResponse(c, 400, constants.SHOWTIME_CLOSED_MSG, nil)
	}

	if conflicts := helper.FindSeatConflicts(showTime.BookedSeats, input.Seats); len(conflicts) > 0 {
		return utils.ErrorResponse(c, 400, constants.SEATS_ALREADY_BOOKED,
			errors.New("taken: "+strings.Join(conflicts, ", ")))
	}

	// The client-sent amount is checked against the authoritative price, not
	// trusted.
	totalAmount := helper.CalculateTotalAmount(showTime.Price, len(input.Seats))
	amountPaise := helper.AmountInPaise(totalAmount)
	if helper.AmountInPaise(input.TotalAmount) != amountPaise {
		return utils.ErrorResponse(c, 400, constants.AMOUNT_MISMATCH,
			fmt.Errorf("expected %.2f, got %.2f", totalAmount, input.TotalAmount))
	}

	razorpay := NewGateway()
	order, err := razorpay.CreateOrder(model.OrderRequest{
		Amount:   amountPaise,
		Currency: "INR",
		Receipt:  fmt.Sprintf("booking_%d", time.Now().UnixMilli()),
		Notes: map[string]string{
			"movieId":    fmt.Sprint(input.MovieId),
			"showTimeId": fmt.Sprint(input.ShowTimeId),
			"customerId": fmt.Sprint(claim.CustomerId),
		},
	})
	if err != nil {
		// No booking row exists yet, so a retry is safe for the client.
		return utils.ErrorResponse(c, 500, constants.PAYMENT_ORDER_FAILED, err)
	}

	booking := model.Booking{
		CustomerId:      claim.CustomerId,
		MovieId:         input.MovieId,
		ShowTimeId:      input.ShowTimeId,
		TotalAmount:     totalAmount,
		BookingStatus:   constants.BOOKING_PENDING,
		RazorpayOrderId: order.Id,
	}
	for _, seat := range input.Seats {
		booking.Seats = append(booking.Seats, model.BookingSeat{Row: seat.Row, Number: seat.Number})
	}

	if err := db.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"orderId":   order.Id,
		"amount":    totalAmount,
		"bookingId": booking.ID,
	})
}

// VerifyPayment confirms a booking after the client completes payment:
// signature check, ownership and idempotency guards, atomic seat commit,
// receipt creation.
func VerifyPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.VerifyPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, 401, "Missing token", nil)
	}

	// Signature first: a bad callback never touches the booking, the client
	// may retry with correct data.
	razorpay := NewGateway()
	if !razorpay.VerifySignature(input.RazorpayOrderId, input.RazorpayPaymentId, input.RazorpaySignature) {
		return utils.ErrorResponse(c, 400, constants.PAYMENT_VERIFICATION_FAILED, nil)
	}

	db := database.DB

	var booking model.Booking
	if err := db.Preload("Seats").First(&booking, input.BookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.CustomerId != claim.CustomerId {
		return utils.ErrorResponse(c, 403, constants.ACCESS_DENIED, nil)
	}
	// A signature signed for a different order must not confirm this booking.
	if booking.RazorpayOrderId != input.RazorpayOrderId {
		return utils.ErrorResponse(c, 400, constants.PAYMENT_VERIFICATION_FAILED, nil)
	}
	if booking.BookingStatus == constants.BOOKING_CONFIRMED {
		return utils.ErrorResponse(c, 400, constants.BOOKING_ALREADY_CONFIRMED, nil)
	}
	if booking.BookingStatus != constants.BOOKING_PENDING {
		return utils.ErrorResponse(c, 400, constants.BOOKING_NOT_PENDING, nil)
	}

	var movie model.Movie
	if err := db.First(&movie, booking.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	var showTime model.ShowTime
	if err := db.Where("id = ? AND movie_id = ?", booking.ShowTimeId, booking.MovieId).
		First(&showTime).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Idempotency guard is itself conditional: if another confirm for the same
	// booking won the race, zero rows change and we report AlreadyConfirmed.
	result := tx.Model(&model.Booking{}).
		Where("id = ? AND booking_status = ?", booking.ID, constants.BOOKING_PENDING).
		Updates(map[string]any{
			"booking_status":      constants.BOOKING_CONFIRMED,
			"razorpay_payment_id": input.RazorpayPaymentId,
			"razorpay_signature":  input.RazorpaySignature,
		})
	if result.Error != nil {
		tx.Rollback()
		markBookingFailed(db, booking.ID, input)
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, 400, constants.BOOKING_ALREADY_CONFIRMED, nil)
	}

	// Re-check-and-commit against the live seat list. Verification already
	// passed, so a failure here must leave the booking failed, never pending.
	if err := helper.CommitSeats(tx, booking.ShowTimeId, booking.Seats, claim.CustomerId); err != nil {
		tx.Rollback()
		markBookingFailed(db, booking.ID, input)
		if errors.Is(err, helper.ErrSeatConflict) {
			return utils.ErrorResponse(c, 400, constants.SEATS_ALREADY_BOOKED, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	receipt := model.Receipt{
		BookingId:     booking.ID,
		CustomerId:    claim.CustomerId,
		ReceiptNumber: "RCP-" + strings.ToUpper(uuid.New().String()[:10]),
		MovieTitle:    movie.Title,
		ShowTime:      showTime.Time,
		ShowDate:      showTime.Date,
		TotalAmount:   booking.TotalAmount,
		PaymentMethod: constants.PAYMENT_METHOD_RAZORPAY,
		TransactionId: input.RazorpayPaymentId,
	}
	// Built by hand rather than copied: receipt seats get their own ids and
	// timestamps, not the booking seats'.
	for _, seat := range booking.Seats {
		receipt.Seats = append(receipt.Seats, model.ReceiptSeat{Row: seat.Row, Number: seat.Number})
	}

	if err := tx.Create(&receipt).Error; err != nil {
		tx.Rollback()
		markBookingFailed(db, booking.ID, input)
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		markBookingFailed(db, booking.ID, input)
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.BookingStatus = constants.BOOKING_CONFIRMED
	booking.RazorpayPaymentId = input.RazorpayPaymentId
	booking.RazorpaySignature = input.RazorpaySignature

	InvalidateMovieCache()

	var seatLabels []string
	for _, seat := range booking.Seats {
		seatLabels = append(seatLabels, fmt.Sprintf("%s%d", seat.Row, seat.Number))
	}
	utils.SendBookingConfirmationEmail(claim.Email, utils.BookingConfirmationData{
		ReceiptNumber: receipt.ReceiptNumber,
		MovieTitle:    movie.Title,
		ShowTime:      showTime.Time,
		ShowDate:      showTime.Date.Format("2006-01-02"),
		Seats:         strings.Join(seatLabels, ", "),
		TotalAmount:   booking.TotalAmount,
		TransactionId: input.RazorpayPaymentId,
	})

	return c.Status(200).JSON(fiber.Map{
		"message": "Payment verified and booking confirmed",
		"booking": booking,
		"receipt": receipt,
	})
}

// markBookingFailed records a post-verification failure so a paid-but-stuck
// booking is visible, never silently pending. Conditional on pending so a
// racing confirm that already won cannot be overwritten.
func markBookingFailed(db *gorm.DB, bookingId uint, input model.VerifyPaymentInput) {
	db.Model(&model.Booking{}).
		Where("id = ? AND booking_status = ?", bookingId, constants.BOOKING_PENDING).
		Updates(map[string]any{
			"booking_status":      constants.BOOKING_FAILED,
			"razorpay_payment_id": input.RazorpayPaymentId,
			"razorpay_signature":  input.RazorpaySignature,
		})
}

// GetMyBookings lists the caller's bookings, newest first.
func GetMyBookings(c *fiber.Ctx) error {
	claim := helper.GetCustomerFromToken(c)
	if claim.CustomerId == 0 {
		return utils.ErrorResponse(c, 401, "Missing token", nil)
	}

	var bookings []model.Booking
	if err := database.DB.
		Preload("Seats").
		Preload("Movie").
		Where("customer_id = ?", claim.CustomerId).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, 200, bookings)
}
