// Package store persists confirmed bookings under a single key per booking
// reference so the confirmation screen can read them back. A Redis-backed
// implementation provides durability; the in-memory implementation serves
// tests and environments without Redis.
package store

import (
	"context"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// KeyPrefix namespaces booking keys in the backing store.
const KeyPrefix = "flightBooking:"

// BookingStore saves and retrieves confirmed bookings by reference.
type BookingStore interface {
	// Save persists a booking confirmation under its reference.
	Save(ctx context.Context, booking domain.BookingConfirmation) error

	// Get retrieves a booking by reference.
	// Returns domain.ErrBookingNotFound when no booking matches.
	Get(ctx context.Context, reference string) (domain.BookingConfirmation, error)

	// Close releases the store's resources.
	Close() error
}

// Key returns the storage key for a booking reference.
func Key(reference string) string {
	return KeyPrefix + reference
}
