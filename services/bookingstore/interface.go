package bookingstore

import (
	"context"
	"errors"

	"varahicare/models"
)

var (
	// ErrNotFound indicates the booking id does not exist in the store.
	ErrNotFound = errors.New("booking not found")
	// ErrTerminalStatus indicates the booking is Completed or Cancelled
	// and cannot advance.
	ErrTerminalStatus = errors.New("booking status cannot advance")
	// ErrNotCancellable indicates the booking is already Completed or
	// Cancelled.
	ErrNotCancellable = errors.New("booking cannot be cancelled")
)

// FilterAll selects every booking regardless of status.
const FilterAll = "All"

// BookingStore owns the ordered booking collection. Every mutation
// rewrites the full collection to the persistence layer before
// returning.
type BookingStore interface {
	// Load restores the collection from the persistence layer. Absent or
	// unparseable data initializes an empty collection; only a transport
	// error from the backend is reported, and even then the store is
	// usable (empty).
	Load(ctx context.Context) error

	// Append creates a booking from the submitted fields: fresh unique
	// id, status Pending, creation time now, inserted at the front.
	Append(ctx context.Context, input models.BookingInput) models.Booking

	// UpdateStatus replaces the status of the matching booking. Reports
	// whether the id existed; an unknown id leaves the collection
	// unchanged.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) bool

	// Advance moves a booking one step along Pending -> Confirmed ->
	// Completed. Returns ErrNotFound or ErrTerminalStatus.
	Advance(ctx context.Context, id string) (models.Booking, error)

	// Cancel moves a Pending or Confirmed booking to Cancelled. Returns
	// ErrNotFound or ErrNotCancellable.
	Cancel(ctx context.Context, id string) (models.Booking, error)

	// Delete removes the matching booking. Reports whether it existed.
	Delete(ctx context.Context, id string) bool

	// List returns the bookings with the given status, in store order
	// (newest first). FilterAll returns everything.
	List(filter string) []models.Booking
}
