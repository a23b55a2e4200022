package handler

import (
	"errors"
	"strings"
	"time"

	"movieflix/constants"
	"movieflix/database"
	"movieflix/helper"
	"movieflix/model"
	"movieflix/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetMovies lists the catalog with showtimes and booked seats, served through
// the Redis cache when available.
func GetMovies(c *fiber.Ctx) error {
	if movies := GetCachedMovies(); movies != nil {
		return c.Status(200).JSON(movies)
	}

	var movies []model.Movie
	if err := database.DB.
		Preload("ShowTimes").
		Preload("ShowTimes.BookedSeats").
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	SetCachedMovies(movies)
	return c.Status(200).JSON(movies)
}

func GetMovieById(c *fiber.Ctx) error {
	movieId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var movie model.Movie
	if err := database.DB.
		Preload("ShowTimes").
		Preload("ShowTimes.BookedSeats").
		First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(200).JSON(movie)
}

func GetMovieBySlug(c *fiber.Ctx) error {
	movieSlug := c.Params("slug")

	var movie model.Movie
	if err := database.DB.
		Preload("ShowTimes").
		Preload("ShowTimes.BookedSeats").
		Where("slug = ?", movieSlug).
		First(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, 404, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(200).JSON(movie)
}

// CreateMovie is the catalog admin action. New showtimes start OPEN at full
// capacity.
func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	movie := new(model.Movie)
	copier.Copy(movie, &input)
	movie.Cast = strings.Join(input.Cast, ", ")
	movie.Slug = helper.GenerateUniqueMovieSlug(db, input.Title)
	if input.ReleaseDate != "" {
		if t, err := time.Parse("2006-01-02", input.ReleaseDate); err == nil {
			movie.ReleaseDate = &t
		}
	}

	movie.ShowTimes = nil
	for _, st := range input.ShowTimes {
		date, err := time.Parse("2006-01-02", st.Date)
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		movie.ShowTimes = append(movie.ShowTimes, model.ShowTime{
			Time:           st.Time,
			Date:           date,
			Price:          st.Price,
			AvailableSeats: constants.SHOWTIME_CAPACITY,
			Status:         constants.SHOWTIME_OPEN,
		})
	}

	if err := db.Create(movie).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateMovieCache()
	return utils.SuccessResponse(c, 201, movie)
}

// SeedMovies loads the sample catalog (development helper).
func SeedMovies(c *fiber.Ctx) error {
	database.SeedMovies(database.DB)
	InvalidateMovieCache()

	var movies []model.Movie
	if err := database.DB.Preload("ShowTimes").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, 201, movies)
}
