package handler

import (
	"log"
	"time"

	"movieflix/constants"
	"movieflix/database"
	"movieflix/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartShowtimeScheduler runs catalog housekeeping every 10 minutes: showtimes
// whose date has passed are closed to new orders. Seat state and booking
// status are never touched here, the booking path stays request-driven.
func StartShowtimeScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/10 * * * *", closeExpiredShowtimes)
	if err != nil {
		log.Printf("Error starting showtime scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Showtime scheduler started (every 10 minutes)")
}

func closeExpiredShowtimes() {
	cutoff := time.Now().Truncate(24 * time.Hour)
	result := database.DB.Model(&model.ShowTime{}).
		Where("status = ? AND date < ?", constants.SHOWTIME_OPEN, cutoff).
		Update("status", constants.SHOWTIME_CLOSED)

	if result.Error != nil {
		log.Printf("Error closing expired showtimes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Closed %d expired showtimes", result.RowsAffected)
		InvalidateMovieCache()
	}
}

func StopShowtimeScheduler() {
	if scheduler != nil {
		scheduler.Stop()
	}
}
