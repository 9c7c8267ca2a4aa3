package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/signup", app.Signup)
	r.Post("/login", app.Login)
	r.Post("/logout", app.Logout)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}/shows", app.GetShowsOfMovie)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Post("/token/refresh", app.RefreshToken)
		r.Get("/users/me", app.GetCurrentUser)
		r.Post("/shows/{showId}/book", app.BookShow)
		r.Post("/bookings/{bookingId}/cancel", app.CancelBooking)
		r.Get("/my-bookings", app.GetBookingsOfUser)
	})

	return r
}
