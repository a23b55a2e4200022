package database

import (
	"log"
	"time"

	"movieflix/constants"
	"movieflix/helper"
	"movieflix/model"

	"gorm.io/gorm"
)

func parseDate(dateStr string) *time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return &t
}

func showTimes(times []string, date string, prices []float64) []model.ShowTime {
	d, _ := time.Parse("2006-01-02", date)
	var result []model.ShowTime
	for i, t := range times {
		result = append(result, model.ShowTime{
			Time:           t,
			Date:           d,
			Price:          prices[i],
			AvailableSeats: constants.SHOWTIME_CAPACITY,
			Status:         constants.SHOWTIME_OPEN,
		})
	}
	return result
}

// SeedMovies loads the sample catalog. Safe to call repeatedly: existing
// titles are left untouched.
func SeedMovies(db *gorm.DB) {
	movies := []model.Movie{
		{
			Title:       "Avengers: Endgame",
			Description: "The Avengers assemble once more to reverse the damage caused by Thanos.",
			Duration:    "3h 1m",
			Genre:       "Action, Adventure, Drama",
			Rating:      8.4,
			Image:       "https://m.media-amazon.com/images/M/MV5BMTc5MDE2ODcwNV5BMl5BanBnXkFtZTgwMzI2NzQ2NzM@._V1_FMjpg_UX1000_.jpg",
			Trailer:     "https://www.youtube.com/watch?v=TcMBFSGVi1c",
			Cast:        "Robert Downey Jr., Chris Evans, Mark Ruffalo, Chris Hemsworth",
			Director:    "Anthony Russo, Joe Russo",
			Language:    "English",
			ReleaseDate: parseDate("2019-04-26"),
			ShowTimes:   showTimes([]string{"10:00 AM", "2:00 PM", "6:00 PM"}, "2024-01-15", []float64{200, 250, 300}),
		},
		{
			Title:       "The Dark Knight",
			Description: "When the menace known as the Joker wreaks havoc on Gotham City.",
			Duration:    "2h 32m",
			Genre:       "Action, Crime, Drama",
			Rating:      9.0,
			Image:       "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_FMjpg_UX1000_.jpg",
			Trailer:     "https://www.youtube.com/watch?v=EXeTwQWrcwY",
			Cast:        "Christian Bale, Heath Ledger, Aaron Eckhart, Michael Caine",
			Director:    "Christopher Nolan",
			Language:    "English",
			ReleaseDate: parseDate("2008-07-18"),
			ShowTimes:   showTimes([]string{"11:00 AM", "3:00 PM", "7:00 PM"}, "2024-01-15", []float64{180, 220, 280}),
		},
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology.",
			Duration:    "2h 28m",
			Genre:       "Action, Sci-Fi, Thriller",
			Rating:      8.8,
			Image:       "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_FMjpg_UX1000_.jpg",
			Trailer:     "https://www.youtube.com/watch?v=YoHD9XEInc0",
			Cast:        "Leonardo DiCaprio, Marion Cotillard, Tom Hardy, Elliot Page",
			Director:    "Christopher Nolan",
			Language:    "English",
			ReleaseDate: parseDate("2010-07-16"),
			ShowTimes:   showTimes([]string{"12:00 PM", "4:00 PM", "8:00 PM"}, "2024-01-15", []float64{200, 250, 300}),
		},
		{
			Title:       "Interstellar",
			Description: "A team of explorers travel through a wormhole in space.",
			Duration:    "2h 49m",
			Genre:       "Adventure, Drama, Sci-Fi",
			Rating:      8.6,
			Image:       "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEyLWFmMjktY2FiMmZkNWIyODZiXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_FMjpg_UX1000_.jpg",
			Trailer:     "https://www.youtube.com/watch?v=zSWdZVtXT7E",
			Cast:        "Matthew McConaughey, Anne Hathaway, Jessica Chastain, Bill Irwin",
			Director:    "Christopher Nolan",
			Language:    "English",
			ReleaseDate: parseDate("2014-11-07"),
			ShowTimes:   showTimes([]string{"1:00 PM", "5:00 PM", "9:00 PM"}, "2024-01-15", []float64{220, 270, 320}),
		},
		{
			Title:       "The Matrix",
			Description: "A computer hacker learns from mysterious rebels about the true nature of his reality.",
			Duration:    "2h 16m",
			Genre:       "Action, Sci-Fi",
			Rating:      8.7,
			Image:       "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkYzNjNTc4L2ltYWdlXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_FMjpg_UX1000_.jpg",
			Trailer:     "https://www.youtube.com/watch?v=vKQi3bIA1HI",
			Cast:        "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss, Hugo Weaving",
			Director:    "The Wachowskis",
			Language:    "English",
			ReleaseDate: parseDate("1999-03-31"),
			ShowTimes:   showTimes([]string{"10:30 AM", "2:30 PM", "6:30 PM"}, "2024-01-15", []float64{150, 200, 250}),
		},
	}

	for _, movie := range movies {
		var count int64
		db.Model(&model.Movie{}).Where("title = ?", movie.Title).Count(&count)
		if count > 0 {
			continue
		}
		movie.Slug = helper.GenerateUniqueMovieSlug(db, movie.Title)
		if err := db.Create(&movie).Error; err != nil {
			log.Println("failed to seed movie:", movie.Title, "error:", err)
		}
	}
}
