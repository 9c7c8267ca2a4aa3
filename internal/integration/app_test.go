package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/show-booking/internal/app"
	"github.com/metinatakli/show-booking/internal/auth"
	"github.com/metinatakli/show-booking/internal/events"
	"github.com/metinatakli/show-booking/internal/repository"
	appvalidator "github.com/metinatakli/show-booking/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	Redis     *redis.Client
	Tokens    *auth.TokenIssuer
	Publisher *events.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	publisher := events.NewMockPublisher()
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		tokens,
		publisher,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresShowRepository(db),
		repository.NewPostgresBookingRepository(db, cfg.LockTimeout),
	)

	return &TestApp{
		App:       application,
		DB:        db,
		Redis:     redisClient,
		Tokens:    tokens,
		Publisher: publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.Redis.Close()
	a.DB.Close()
}
