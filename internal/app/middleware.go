package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAuthentication accepts either a bearer access token or a logged-in session. A bearer token
// that is present but invalid is rejected without falling back to the session.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		var userId int

		authorizationHeader := r.Header.Get("Authorization")

		if authorizationHeader != "" {
			scheme, token, found := strings.Cut(authorizationHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				app.invalidAccessTokenResponse(w, r)
				return
			}

			id, err := app.tokens.Parse(token)
			if err != nil {
				app.contextGetLogger(r).Warn("rejected access token", "error", err)
				app.invalidAccessTokenResponse(w, r)
				return
			}

			userId = id
		} else {
			userId = app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		}

		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}
