package class

import "time"

// FitnessClass mirrors the fitness_classes row. ClassDatetime is stored in
// the reference timezone; AvailableSlots is mutated only by booking creation.
type FitnessClass struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description"`
	Instructor      string    `db:"instructor" json:"instructor"`
	ClassDatetime   time.Time `db:"class_datetime" json:"class_datetime"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	MaxSlots        int       `db:"max_slots" json:"max_slots"`
	AvailableSlots  int       `db:"available_slots" json:"available_slots"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

func (c *FitnessClass) BookedSlots() int {
	return c.MaxSlots - c.AvailableSlots
}

func (c *FitnessClass) IsFullyBooked() bool {
	return c.AvailableSlots <= 0
}

func (c *FitnessClass) IsPast(now time.Time) bool {
	return c.ClassDatetime.Before(now)
}

// Response is the API projection of a class, with derived fields and the
// datetime expressed in the requested display timezone.
type Response struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Instructor      string    `json:"instructor"`
	ClassDatetime   time.Time `json:"class_datetime"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxSlots        int       `json:"max_slots"`
	AvailableSlots  int       `json:"available_slots"`
	BookedSlots     int       `json:"booked_slots"`
	IsFullyBooked   bool      `json:"is_fully_booked"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToResponse projects the class into loc for display. The stored value is
// untouched.
func (c *FitnessClass) ToResponse(loc *time.Location) Response {
	return Response{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Instructor:      c.Instructor,
		ClassDatetime:   c.ClassDatetime.In(loc),
		DurationMinutes: c.DurationMinutes,
		MaxSlots:        c.MaxSlots,
		AvailableSlots:  c.AvailableSlots,
		BookedSlots:     c.BookedSlots(),
		IsFullyBooked:   c.IsFullyBooked(),
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

type CreateClassRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=100"`
	Description     *string `json:"description" binding:"omitempty,max=500"`
	Instructor      string  `json:"instructor" binding:"required,min=2,max=100"`
	ClassDatetime   string  `json:"class_datetime" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,gte=15,lte=180"`
	MaxSlots        int     `json:"max_slots" binding:"required,gte=1,lte=50"`
}
