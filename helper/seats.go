package helper

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"movieflix/model"

	"gorm.io/gorm"
)

// ErrSeatConflict reports that at least one requested seat is taken, either at
// check time or inside the commit itself.
var ErrSeatConflict = errors.New("seat already booked")

// SeatKey identifies a physical seat within a showtime.
func SeatKey(row string, number int) string {
	return fmt.Sprintf("%s-%d", row, number)
}

// FindSeatConflicts returns the keys of requested seats already present in the
// showtime's booked list.
func FindSeatConflicts(booked []model.BookedSeat, requested []model.SeatInput) []string {
	taken := make(map[string]bool, len(booked))
	for _, seat := range booked {
		taken[SeatKey(seat.Row, seat.Number)] = true
	}

	var conflicts []string
	for _, seat := range requested {
		key := SeatKey(seat.Row, seat.Number)
		if taken[key] {
			conflicts = append(conflicts, key)
		}
	}
	return conflicts
}

// HasDuplicateSeats reports whether the request names the same seat twice.
func HasDuplicateSeats(requested []model.SeatInput) bool {
	seen := make(map[string]bool, len(requested))
	for _, seat := range requested {
		key := SeatKey(seat.Row, seat.Number)
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}

// CalculateTotalAmount is the authoritative price: showtime price x seat count.
func CalculateTotalAmount(price float64, seatCount int) float64 {
	return price * float64(seatCount)
}

// AmountInPaise converts a rupee amount to whole paise. Amounts are compared
// and sent to the gateway in paise so float arithmetic (199.99 x 3) cannot
// reject an honest client or truncate the charged amount.
func AmountInPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CommitSeats appends the booking's seats to the showtime inside tx. The
// composite unique index on (show_time_id, row, number) turns the insert into
// the conditional write: a concurrent commit for any of the same seats fails
// here instead of double-booking. The decrement is likewise guarded so
// available_seats can never go negative.
func CommitSeats(tx *gorm.DB, showTimeId uint, seats []model.BookingSeat, customerId uint) error {
	rows := make([]model.BookedSeat, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, model.BookedSeat{
			ShowTimeId: showTimeId,
			Row:        seat.Row,
			Number:     seat.Number,
			CustomerId: customerId,
		})
	}

	if err := tx.Create(&rows).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return ErrSeatConflict
		}
		return err
	}

	result := tx.Model(&model.ShowTime{}).
		Where("id = ? AND available_seats >= ?", showTimeId, len(seats)).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", len(seats)))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSeatConflict
	}
	return nil
}
