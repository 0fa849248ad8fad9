package booking

import (
	"time"

	"classbook/internal/class"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID          int       `db:"id" json:"id"`
	ClassID     int       `db:"class_id" json:"class_id"`
	ClientName  string    `db:"client_name" json:"client_name"`
	ClientEmail string    `db:"client_email" json:"client_email"`
	Status      string    `db:"status" json:"booking_status"`
	Reference   string    `db:"booking_reference" json:"booking_reference"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Response embeds the owning class snapshot alongside the booking row.
type Response struct {
	Booking
	FitnessClass class.Response `json:"fitness_class"`
}

type ListResponse struct {
	Bookings    []Response `json:"bookings"`
	TotalCount  int        `json:"total_count"`
	ClientEmail string     `json:"client_email"`
}

type CreateBookingRequest struct {
	ClassID     int     `json:"class_id" binding:"required,gte=1"`
	ClientName  string  `json:"client_name" binding:"required,min=2,max=100"`
	ClientEmail string  `json:"client_email" binding:"required,email"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}
