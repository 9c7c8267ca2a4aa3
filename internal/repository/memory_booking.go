package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/metinatakli/show-booking/internal/domain"
)

// MemoryBookingRepository keeps bookings in process memory. Show locks are in-process too, so it is
// only correct while a single instance serves all requests.
type MemoryBookingRepository struct {
	mu          sync.RWMutex
	bookings    map[int]*domain.Booking
	active      map[seatKey]int
	nextID      int
	showLocks   map[int]chan struct{}
	locksMu     sync.Mutex
	lockTimeout time.Duration
	shows       func(ctx context.Context, id int) (*domain.Show, error)
}

type seatKey struct {
	showID int
	seat   int
}

func NewMemoryBookingRepository(lockTimeout time.Duration) *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings:    make(map[int]*domain.Booking),
		active:      make(map[seatKey]int),
		nextID:      1,
		showLocks:   make(map[int]chan struct{}),
		lockTimeout: lockTimeout,
	}
}

// WithShowLookup makes summaries include show details.
func (m *MemoryBookingRepository) WithShowLookup(fn func(ctx context.Context, id int) (*domain.Show, error)) *MemoryBookingRepository {
	m.shows = fn
	return m
}

func (m *MemoryBookingRepository) showLock(showID int) chan struct{} {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()

	lock, ok := m.showLocks[showID]
	if !ok {
		lock = make(chan struct{}, 1)
		m.showLocks[showID] = lock
	}

	return lock
}

func (m *MemoryBookingRepository) WithShowLock(ctx context.Context, showID int, fn func(domain.SeatLedger) error) error {
	if m.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.lockTimeout)
		defer cancel()
	}

	lock := m.showLock(showID)

	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return domain.ErrShowBusy
	}
	defer func() { <-lock }()

	ledger := &memoryLedger{repo: m}

	err := fn(ledger)
	if err != nil {
		return err
	}

	return m.commit(ledger.pending)
}

func (m *MemoryBookingRepository) commit(pending []*domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range pending {
		if _, taken := m.active[seatKey{b.ShowID, b.SeatNumber}]; taken {
			return domain.ErrSeatAlreadyReserved
		}
	}

	for _, b := range pending {
		stored := *b
		m.bookings[stored.ID] = &stored
		m.active[seatKey{b.ShowID, b.SeatNumber}] = stored.ID
	}

	return nil
}

func (m *MemoryBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	booking := *b

	return &booking, nil
}

func (m *MemoryBookingRepository) UpdateStatus(ctx context.Context, id int, from, to domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok {
		return domain.ErrRecordNotFound
	}

	if b.Status != from {
		return domain.ErrEditConflict
	}

	key := seatKey{b.ShowID, b.SeatNumber}

	if to == domain.BookingStatusBooked {
		if _, taken := m.active[key]; taken {
			return domain.ErrSeatAlreadyReserved
		}
		m.active[key] = b.ID
	} else if m.active[key] == b.ID {
		delete(m.active, key)
	}

	b.Status = to

	return nil
}

func (m *MemoryBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	m.mu.RLock()
	owned := make([]domain.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userId {
			owned = append(owned, *b)
		}
	}
	m.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := len(owned)
	start := min(pagination.Offset(), total)
	end := min(start+pagination.Limit(), total)

	summaries := make([]domain.BookingSummary, 0, end-start)
	for _, b := range owned[start:end] {
		summary := domain.BookingSummary{Booking: b}

		if m.shows != nil {
			show, err := m.shows(ctx, b.ShowID)
			if err != nil {
				return nil, nil, err
			}
			summary.MovieTitle = show.Movie.Title
			summary.ScreenName = show.ScreenName
			summary.ShowDateTime = show.DateTime
		}

		summaries = append(summaries, summary)
	}

	return summaries, domain.NewMetadata(total, pagination.Page, pagination.PageSize), nil
}

// memoryLedger buffers inserts until the locked function returns without error.
type memoryLedger struct {
	repo    *MemoryBookingRepository
	pending []*domain.Booking
}

func (l *memoryLedger) CountBooked(ctx context.Context, showID int) (int, error) {
	seats, err := l.BookedSeats(ctx, showID)
	if err != nil {
		return 0, err
	}

	return len(seats), nil
}

func (l *memoryLedger) BookedSeats(ctx context.Context, showID int) ([]int, error) {
	l.repo.mu.RLock()
	defer l.repo.mu.RUnlock()

	seats := make([]int, 0)
	for key := range l.repo.active {
		if key.showID == showID {
			seats = append(seats, key.seat)
		}
	}

	for _, b := range l.pending {
		if b.ShowID == showID {
			seats = append(seats, b.SeatNumber)
		}
	}

	sort.Ints(seats)

	return seats, nil
}

func (l *memoryLedger) InsertBookings(ctx context.Context, bookings []*domain.Booking) error {
	l.repo.mu.Lock()
	defer l.repo.mu.Unlock()

	taken := make(map[seatKey]bool)
	for _, b := range l.pending {
		taken[seatKey{b.ShowID, b.SeatNumber}] = true
	}

	for _, b := range bookings {
		key := seatKey{b.ShowID, b.SeatNumber}
		if _, active := l.repo.active[key]; active || taken[key] {
			return domain.ErrSeatAlreadyReserved
		}
		taken[key] = true
	}

	for _, b := range bookings {
		b.ID = l.repo.nextID
		l.repo.nextID++
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
		l.pending = append(l.pending, b)
	}

	return nil
}
