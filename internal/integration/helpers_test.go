package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/show-booking/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch val := v.(type) {
	case map[string]any:
		cleanMap(val)
	case []any:
		for _, item := range val {
			cleanValue(item)
		}
	}
}

func truncateAll(t testing.TB, testApp *TestApp) {
	t.Helper()

	_, err := testApp.DB.Exec(context.Background(),
		"TRUNCATE bookings, shows, movies, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	require.NoError(t, testApp.Redis.FlushAll(context.Background()).Err())
	testApp.Publisher.Reset()
}

func createUser(t testing.TB, testApp *TestApp, username string) int {
	t.Helper()

	user := domain.User{
		Username:  username,
		Email:     TestUserEmail,
		FirstName: TestUserFirstName,
		LastName:  TestUserLastName,
	}
	require.NoError(t, user.Password.Set(TestUserPassword))

	var id int
	err := testApp.DB.QueryRow(context.Background(), `
		INSERT INTO users (username, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Username, user.Email, user.Password.Hash, user.FirstName, user.LastName,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createMovie(t testing.TB, testApp *TestApp, title, genre string, rating domain.Rating, ageLimit int) int {
	t.Helper()

	var id int
	err := testApp.DB.QueryRow(context.Background(), `
		INSERT INTO movies (title, duration_minutes, genre, rating, age_limit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		title, TestMovieDuration, genre, rating, ageLimit,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createShow(t testing.TB, testApp *TestApp, movieId int, dateTime time.Time, totalSeats int) int {
	t.Helper()

	var id int
	err := testApp.DB.QueryRow(context.Background(), `
		INSERT INTO shows (movie_id, screen_name, date_time, total_seats)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		movieId, TestScreenName, dateTime, totalSeats,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createBooking(t testing.TB, testApp *TestApp, userId, showId, seat int, status domain.BookingStatus) int {
	t.Helper()

	var id int
	err := testApp.DB.QueryRow(context.Background(), `
		INSERT INTO bookings (user_id, show_id, seat_number, passenger_name, passenger_age, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		userId, showId, seat, TestPassengerName, TestPassengerAge, status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func countActiveBookings(t testing.TB, testApp *TestApp, showId int) int {
	t.Helper()

	var n int
	err := testApp.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE show_id = $1 AND status = 'booked'", showId,
	).Scan(&n)
	require.NoError(t, err)

	return n
}

func bearer(t testing.TB, testApp *TestApp, userId int) map[string]string {
	t.Helper()

	token, err := testApp.Tokens.Issue(userId)
	require.NoError(t, err)

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token.Token)}
}
