package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/show-booking/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT
			s.id,
			s.screen_name,
			s.date_time,
			s.total_seats,
			m.id,
			m.title,
			m.duration_minutes,
			m.genre,
			m.rating,
			m.age_limit
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		WHERE s.id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.ScreenName,
		&show.DateTime,
		&show.TotalSeats,
		&show.Movie.ID,
		&show.Movie.Title,
		&show.Movie.DurationMinutes,
		&show.Movie.Genre,
		&show.Movie.Rating,
		&show.Movie.AgeLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) GetByMovieId(ctx context.Context, movieId int) ([]domain.ShowAvailability, error) {
	query := `
		SELECT
			s.id,
			s.screen_name,
			s.date_time,
			s.total_seats,
			s.total_seats - COUNT(b.id) FILTER (WHERE b.status = 'booked'),
			m.id,
			m.title,
			m.duration_minutes,
			m.genre,
			m.rating,
			m.age_limit
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		LEFT JOIN bookings b ON b.show_id = s.id
		WHERE s.movie_id = $1
		GROUP BY s.id, m.id
		ORDER BY s.date_time
	`

	rows, err := p.db.Query(ctx, query, movieId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.ShowAvailability, 0)

	for rows.Next() {
		var show domain.ShowAvailability

		err := rows.Scan(
			&show.ID,
			&show.ScreenName,
			&show.DateTime,
			&show.TotalSeats,
			&show.AvailableSeats,
			&show.Movie.ID,
			&show.Movie.Title,
			&show.Movie.DurationMinutes,
			&show.Movie.Genre,
			&show.Movie.Rating,
			&show.Movie.AgeLimit,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}
