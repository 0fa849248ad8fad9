package booking

import (
	"context"
	"time"

	"classbook/internal/class"
)

// CreateParams is the normalized input to the transactional create. The
// reference is generated by the caller so it can retry on a collision.
type CreateParams struct {
	ClassID     int
	ClientName  string
	ClientEmail string
	Notes       *string
	Reference   string
}

type Repository interface {
	// CreateBooking runs every precondition check and the slot decrement
	// inside a single transaction and returns the created booking together
	// with the post-decrement class row.
	CreateBooking(ctx context.Context, params CreateParams, now time.Time) (*Booking, *class.FitnessClass, error)
	ListByEmail(ctx context.Context, clientEmail string) ([]Booking, error)
}
