package constants

// Booking statuses
const (
	BOOKING_PENDING   = "pending"
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_CANCELLED = "cancelled"
	BOOKING_FAILED    = "failed"
)

// Showtime statuses
const (
	SHOWTIME_OPEN   = "OPEN"
	SHOWTIME_CLOSED = "CLOSED"
)

// Fixed seat capacity for a new showtime
const SHOWTIME_CAPACITY = 100

const PAYMENT_METHOD_RAZORPAY = "Razorpay"

// Error messages
const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL_ERROR = "Internal server error"

	MOVIE_NOT_FOUND    = "Movie not found"
	SHOWTIME_NOT_FOUND = "Show time not found"
	SHOWTIME_CLOSED_MSG = "Show time is no longer open for booking"
	BOOKING_NOT_FOUND  = "Booking not found"
	RECEIPT_NOT_FOUND  = "Receipt not found"

	SEATS_ALREADY_BOOKED = "Some seats are already booked"
	AMOUNT_MISMATCH      = "Total amount does not match seat price"

	PAYMENT_VERIFICATION_FAILED = "Payment verification failed"
	PAYMENT_ORDER_FAILED        = "Could not create payment order"
	BOOKING_ALREADY_CONFIRMED   = "Booking already confirmed"
	BOOKING_NOT_PENDING         = "Booking is not awaiting payment"

	ACCESS_DENIED = "Access denied"

	EMAIL_TAKEN       = "Email already registered"
	INVALID_LOGIN     = "Invalid email or password"
	CUSTOMER_NOT_FOUND = "Customer not found"
)
