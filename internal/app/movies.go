package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/show-booking/api"
	"github.com/metinatakli/show-booking/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := app.readPaginationParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   make([]api.MovieSummary, len(movies)),
		Metadata: toApiMetadata(metadata),
	}

	for i, movie := range movies {
		resp.Movies[i] = toMovieSummary(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowsOfMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	shows, err := app.showRepo.GetByMovieId(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Movie: toMovieSummary(movie),
		Shows: make([]api.ShowSummary, len(shows)),
	}

	for i, show := range shows {
		resp.Shows[i] = api.ShowSummary{
			Id:             show.ID,
			ScreenName:     show.ScreenName,
			DateTime:       show.DateTime,
			TotalSeats:     show.TotalSeats,
			AvailableSeats: max(show.AvailableSeats, 0),
			Status:         show.Status(),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:              movie.ID,
		Title:           movie.Title,
		DurationMinutes: movie.DurationMinutes,
		Genre:           movie.Genre,
		Rating:          string(movie.Rating),
		AgeLimit:        movie.AgeLimit,
	}
}
