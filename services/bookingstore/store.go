package bookingstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"varahicare/database/kv"
	"varahicare/models"
)

// DefaultBookingStore keeps the collection in memory and mirrors it to a
// single key in the KV backend on every mutation (write-through).
type DefaultBookingStore struct {
	KV     kv.Store
	Key    string
	Logger *zap.Logger

	mu       sync.Mutex
	bookings []models.Booking
}

func NewDefaultBookingStore(store kv.Store, key string, logger *zap.Logger) *DefaultBookingStore {
	return &DefaultBookingStore{
		KV:     store,
		Key:    key,
		Logger: logger,
	}
}

func (s *DefaultBookingStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = []models.Booking{}

	data, err := s.KV.Get(ctx, s.Key)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		s.Logger.Warn("bookingstore: failed to read persisted bookings, starting empty", zap.Error(err))
		return err
	}

	var loaded []models.Booking
	if err := json.Unmarshal(data, &loaded); err != nil {
		// Corrupt data is treated as absent.
		s.Logger.Warn("bookingstore: persisted bookings unparseable, starting empty", zap.Error(err))
		return nil
	}
	s.bookings = loaded
	return nil
}

// persist rewrites the whole collection. Callers hold the mutex.
func (s *DefaultBookingStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		s.Logger.Error("bookingstore: failed to marshal bookings", zap.Error(err))
		return
	}
	if err := s.KV.Set(ctx, s.Key, data); err != nil {
		s.Logger.Error("bookingstore: failed to persist bookings", zap.Error(err))
	}
}

func (s *DefaultBookingStore) Append(ctx context.Context, input models.BookingInput) models.Booking {
	booking := models.Booking{
		ID:               uuid.New().String(),
		CustomerName:     input.CustomerName,
		Phone:            input.Phone,
		Email:            input.Email,
		Date:             input.Date,
		Time:             input.Time,
		CarDetails:       input.CarDetails,
		SelectedServices: input.SelectedServices,
		Status:           models.StatusPending,
		CreatedAt:        time.Now(),
	}
	if booking.SelectedServices == nil {
		booking.SelectedServices = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first.
	s.bookings = append([]models.Booking{booking}, s.bookings...)
	s.persist(ctx)
	return booking
}

func (s *DefaultBookingStore) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *DefaultBookingStore) Advance(ctx context.Context, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		next, ok := s.bookings[i].Status.Next()
		if !ok {
			return s.bookings[i], ErrTerminalStatus
		}
		s.bookings[i].Status = next
		s.persist(ctx)
		return s.bookings[i], nil
	}
	return models.Booking{}, ErrNotFound
}

func (s *DefaultBookingStore) Cancel(ctx context.Context, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		switch s.bookings[i].Status {
		case models.StatusPending, models.StatusConfirmed:
			s.bookings[i].Status = models.StatusCancelled
			s.persist(ctx)
			return s.bookings[i], nil
		default:
			return s.bookings[i], ErrNotCancellable
		}
	}
	return models.Booking{}, ErrNotFound
}

func (s *DefaultBookingStore) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *DefaultBookingStore) List(filter string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if filter == FilterAll || filter == "" || string(b.Status) == filter {
			out = append(out, b)
		}
	}
	return out
}
