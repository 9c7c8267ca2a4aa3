// Package api contains the request and response bodies of the HTTP API.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type ConflictErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	Seats     []int     `json:"seats,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaginationParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieSummary struct {
	Id              int    `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Genre           string `json:"genre"`
	Rating          string `json:"rating"`
	AgeLimit        int    `json:"ageLimit"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type ShowSummary struct {
	Id             int       `json:"id"`
	ScreenName     string    `json:"screenName"`
	DateTime       time.Time `json:"dateTime"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	Status         string    `json:"status"`
}

type ShowListResponse struct {
	Movie MovieSummary  `json:"movie"`
	Shows []ShowSummary `json:"shows"`
}

type PassengerRequest struct {
	PassengerName string `json:"passengerName" validate:"required,max=255"`
	PassengerAge  *int   `json:"passengerAge" validate:"required,min=0,max=150"`
}

type BookShowRequest struct {
	SeatNumber int                `json:"seatNumber"`
	Passengers []PassengerRequest `json:"passengers" validate:"dive"`
}

type BookingResponse struct {
	Id            int       `json:"id"`
	SeatNumber    int       `json:"seatNumber"`
	PassengerName string    `json:"passengerName"`
	PassengerAge  int       `json:"passengerAge"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookShowResponse struct {
	Message  string            `json:"message"`
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

type BookingSummary struct {
	BookingResponse
	ShowId       int       `json:"showId"`
	MovieTitle   string    `json:"movieTitle"`
	ScreenName   string    `json:"screenName"`
	ShowDateTime time.Time `json:"showDateTime"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}
