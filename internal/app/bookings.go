package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/show-booking/api"
	"github.com/metinatakli/show-booking/internal/booking"
	"github.com/metinatakli/show-booking/internal/domain"
	"github.com/metinatakli/show-booking/internal/events"
)

const publishTimeout = 3 * time.Second

func (app *Application) BookShow(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showId, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.BookShowRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	req := booking.ReservationRequest{
		ShowID:       showId,
		StartingSeat: input.SeatNumber,
		Passengers:   make([]domain.Passenger, len(input.Passengers)),
		UserID:       app.contextGetUserId(r),
	}

	for i, p := range input.Passengers {
		req.Passengers[i] = domain.Passenger{
			Name: p.PassengerName,
			Age:  *p.PassengerAge,
		}
	}

	result, err := app.reservations.Reserve(r.Context(), req)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	logger.Info("seats booked", "show_id", showId, "count", result.Count)

	event := events.Event{
		Type:       events.BookingCreated,
		ShowID:     showId,
		UserID:     req.UserID,
		BookingIDs: make([]int, result.Count),
		Seats:      make([]int, result.Count),
		OccurredAt: time.Now().UTC(),
	}

	resp := api.BookShowResponse{
		Message:  fmt.Sprintf("%d ticket(s) booked successfully!", result.Count),
		Count:    result.Count,
		Bookings: make([]api.BookingResponse, result.Count),
	}

	for i, b := range result.Bookings {
		resp.Bookings[i] = toBookingResponse(b)
		event.BookingIDs[i] = b.ID
		event.Seats[i] = b.SeatNumber
	}

	app.publishEvent(r, event)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cancelled, err := app.cancellations.Cancel(r.Context(), bookingId, app.contextGetUserId(r))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("booking cancelled", "booking_id", cancelled.ID, "show_id", cancelled.ShowID)

	app.publishEvent(r, events.Event{
		Type:       events.BookingCancelled,
		ShowID:     cancelled.ShowID,
		UserID:     cancelled.UserID,
		BookingIDs: []int{cancelled.ID},
		Seats:      []int{cancelled.SeatNumber},
		OccurredAt: time.Now().UTC(),
	})

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Booking cancelled."}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
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

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(
		r.Context(),
		app.contextGetUserId(r),
		toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingSummary, len(summaries)),
		Metadata: toApiMetadata(metadata),
	}

	for i, s := range summaries {
		resp.Bookings[i] = api.BookingSummary{
			BookingResponse: toBookingResponse(s.Booking),
			ShowId:          s.ShowID,
			MovieTitle:      s.MovieTitle,
			ScreenName:      s.ScreenName,
			ShowDateTime:    s.ShowDateTime,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// publishEvent announces a ledger change. The booking is already committed, so a failed publish is
// only logged.
func (app *Application) publishEvent(r *http.Request, event events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), publishTimeout)
	defer cancel()

	err := app.publisher.Publish(ctx, event)
	if err != nil {
		app.contextGetLogger(r).Error("failed to publish booking event", "type", event.Type, "error", err)
	}
}

func toBookingResponse(b domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:            b.ID,
		SeatNumber:    b.SeatNumber,
		PassengerName: b.PassengerName,
		PassengerAge:  b.PassengerAge,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
