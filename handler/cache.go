package handler

import (
	"context"
	"encoding/json"
	"time"

	"movieflix/database"
	"movieflix/model"
)

const movieCacheKey = "movies:all"
const movieCacheTTL = 5 * time.Minute

// GetCachedMovies returns the cached catalog, or nil on miss / no cache.
func GetCachedMovies() []model.Movie {
	if database.Redis == nil {
		return nil
	}
	raw, err := database.Redis.Get(context.Background(), movieCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var movies []model.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil
	}
	return movies
}

func SetCachedMovies(movies []model.Movie) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(movies)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), movieCacheKey, raw, movieCacheTTL)
}

// InvalidateMovieCache drops the cached catalog after a seat commit or a
// catalog change so availability is never served stale past the TTL.
func InvalidateMovieCache() {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(context.Background(), movieCacheKey)
}
