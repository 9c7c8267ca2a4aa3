package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/show-booking/internal/domain"
)

type PostgresBookingRepository struct {
	db          *pgxpool.Pool
	lockTimeout time.Duration
}

func NewPostgresBookingRepository(db *pgxpool.Pool, lockTimeout time.Duration) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// WithShowLock takes a row lock on the show for the length of one transaction. Concurrent callers for
// the same show queue on the lock; other shows are unaffected.
func (p *PostgresBookingRepository) WithShowLock(
	ctx context.Context,
	showID int,
	fn func(domain.SeatLedger) error) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		if p.lockTimeout > 0 {
			timeout := fmt.Sprintf("%dms", p.lockTimeout.Milliseconds())

			_, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, timeout)
			if err != nil {
				return err
			}
		}

		var lockedID int

		err := tx.QueryRow(ctx, `SELECT id FROM shows WHERE id = $1 FOR UPDATE`, showID).Scan(&lockedID)
		if err != nil {
			switch {
			case errors.Is(err, pgx.ErrNoRows):
				return domain.ErrRecordNotFound
			case isLockNotAvailable(err):
				return domain.ErrShowBusy
			default:
				return err
			}
		}

		return fn(&postgresLedger{tx: tx})
	})
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, show_id, seat_number, passenger_name, passenger_age, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowID,
		&booking.SeatNumber,
		&booking.PassengerName,
		&booking.PassengerAge,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) UpdateStatus(
	ctx context.Context,
	id int,
	from, to domain.BookingStatus) error {

	query := `
		UPDATE bookings
		SET status = $3
		WHERE id = $1 AND status = $2
	`

	tag, err := p.db.Exec(ctx, query, id, from, to)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatAlreadyReserved
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEditConflict
	}

	return nil
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.user_id,
			b.show_id,
			b.seat_number,
			b.passenger_name,
			b.passenger_age,
			b.status,
			b.created_at,
			m.title,
			s.screen_name,
			s.date_time
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var summary domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&summary.ID,
			&summary.UserID,
			&summary.ShowID,
			&summary.SeatNumber,
			&summary.PassengerName,
			&summary.PassengerAge,
			&summary.Status,
			&summary.CreatedAt,
			&summary.MovieTitle,
			&summary.ScreenName,
			&summary.ShowDateTime,
		)
		if err != nil {
			return nil, nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return summaries, metadata, nil
}

// postgresLedger reads and writes bookings inside the transaction holding the show lock.
type postgresLedger struct {
	tx pgx.Tx
}

func (l *postgresLedger) CountBooked(ctx context.Context, showID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE show_id = $1 AND status = 'booked'
	`

	var count int

	err := l.tx.QueryRow(ctx, query, showID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (l *postgresLedger) BookedSeats(ctx context.Context, showID int) ([]int, error) {
	query := `
		SELECT seat_number
		FROM bookings
		WHERE show_id = $1 AND status = 'booked'
		ORDER BY seat_number
	`

	rows, err := l.tx.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}

	seats, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, err
	}

	return seats, nil
}

func (l *postgresLedger) InsertBookings(ctx context.Context, bookings []*domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, show_id, seat_number, passenger_name, passenger_age, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	for _, b := range bookings {
		err := l.tx.QueryRow(
			ctx,
			query,
			b.UserID,
			b.ShowID,
			b.SeatNumber,
			b.PassengerName,
			b.PassengerAge,
			b.Status,
			b.CreatedAt,
		).Scan(&b.ID, &b.CreatedAt)

		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSeatAlreadyReserved
			}

			return err
		}
	}

	return nil
}
