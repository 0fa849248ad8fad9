package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"classbook/internal/class"
)

// ErrReferenceTaken reports a unique-index collision on the generated booking
// reference; callers retry with a fresh one.
var ErrReferenceTaken = errors.New("booking reference already taken")

const bookingColumns = `id, class_id, client_name, client_email, status, booking_reference, notes, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBooking locks the class row, checks existence, timing, capacity and
// duplicates in that order, then inserts the booking and decrements
// available_slots. The row lock serializes concurrent attempts on the same
// class, so two requests can never both take the last slot. Email comparison
// in the duplicate check is exact, as stored.
func (r *repository) CreateBooking(ctx context.Context, params CreateParams, now time.Time) (*Booking, *class.FitnessClass, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var fc class.FitnessClass
	err = tx.GetContext(ctx, &fc, `
		SELECT id, name, description, instructor, class_datetime, duration_minutes, max_slots, available_slots, is_active, created_at
		FROM fitness_classes
		WHERE id = $1 AND is_active = TRUE
		FOR UPDATE
	`, params.ClassID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, &ClassNotFoundError{ClassID: params.ClassID}
		}
		return nil, nil, err
	}

	if fc.IsPast(now) {
		return nil, nil, &InvalidBookingDataError{
			Reason: "cannot book a class that has already occurred",
			Extra:  map[string]interface{}{"class_datetime": fc.ClassDatetime},
		}
	}

	if fc.AvailableSlots <= 0 {
		return nil, nil, &NoSlotsAvailableError{
			ClassID:        fc.ID,
			ClassName:      fc.Name,
			AvailableSlots: fc.AvailableSlots,
		}
	}

	var existingID int
	err = tx.GetContext(ctx, &existingID, `
		SELECT id FROM bookings
		WHERE class_id = $1 AND client_email = $2 AND status = $3
	`, params.ClassID, params.ClientEmail, StatusConfirmed)
	if err == nil {
		return nil, nil, &DuplicateBookingError{ExistingBookingID: existingID, ClientEmail: params.ClientEmail}
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, err
	}

	var b Booking
	err = tx.GetContext(ctx, &b, `
		INSERT INTO bookings (class_id, client_name, client_email, status, booking_reference, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bookingColumns,
		params.ClassID, params.ClientName, params.ClientEmail, StatusConfirmed, params.Reference, params.Notes)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "booking_reference") {
			return nil, nil, ErrReferenceTaken
		}
		return nil, nil, err
	}

	err = tx.GetContext(ctx, &fc.AvailableSlots, `
		UPDATE fitness_classes
		SET available_slots = available_slots - 1
		WHERE id = $1
		RETURNING available_slots
	`, params.ClassID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return &b, &fc, nil
}

func (r *repository) ListByEmail(ctx context.Context, clientEmail string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE client_email = $1
		ORDER BY created_at DESC
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, clientEmail)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
