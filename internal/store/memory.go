package store

import (
	"context"
	"sync"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// MemoryStore implements BookingStore in process memory.
// Bookings survive for the lifetime of the process only.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingConfirmation
}

// NewMemoryStore creates an empty in-memory booking store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]domain.BookingConfirmation),
	}
}

// Save implements BookingStore.Save.
func (s *MemoryStore) Save(_ context.Context, booking domain.BookingConfirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[Key(booking.Reference)] = booking
	return nil
}

// Get implements BookingStore.Get.
func (s *MemoryStore) Get(_ context.Context, reference string) (domain.BookingConfirmation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[Key(reference)]
	if !ok {
		return domain.BookingConfirmation{}, domain.ErrBookingNotFound
	}
	return booking, nil
}

// Close implements BookingStore.Close.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements BookingStore at compile time.
var _ BookingStore = (*MemoryStore)(nil)
