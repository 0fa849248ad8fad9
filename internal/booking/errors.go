package booking

import "fmt"

// DomainError is implemented by every booking failure the API reports with a
// stable error_type and a structured detail payload.
type DomainError interface {
	error
	ErrorType() string
	Details() map[string]interface{}
}

type ClassNotFoundError struct {
	ClassID int
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class with id %d not found or inactive", e.ClassID)
}

func (e *ClassNotFoundError) ErrorType() string { return "class_not_found" }

func (e *ClassNotFoundError) Details() map[string]interface{} {
	return map[string]interface{}{"class_id": e.ClassID}
}

type NoSlotsAvailableError struct {
	ClassID        int
	ClassName      string
	AvailableSlots int
}

func (e *NoSlotsAvailableError) Error() string {
	return fmt.Sprintf("no available slots for class %q", e.ClassName)
}

func (e *NoSlotsAvailableError) ErrorType() string { return "no_slots_available" }

func (e *NoSlotsAvailableError) Details() map[string]interface{} {
	return map[string]interface{}{
		"class_id":        e.ClassID,
		"available_slots": e.AvailableSlots,
	}
}

type DuplicateBookingError struct {
	ExistingBookingID int
	ClientEmail       string
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("client %s already has a booking for this class", e.ClientEmail)
}

func (e *DuplicateBookingError) ErrorType() string { return "duplicate_booking" }

func (e *DuplicateBookingError) Details() map[string]interface{} {
	return map[string]interface{}{"existing_booking_id": e.ExistingBookingID}
}

type InvalidBookingDataError struct {
	Reason string
	Extra  map[string]interface{}
}

func (e *InvalidBookingDataError) Error() string { return e.Reason }

func (e *InvalidBookingDataError) ErrorType() string { return "invalid_booking_data" }

func (e *InvalidBookingDataError) Details() map[string]interface{} {
	if e.Extra == nil {
		return map[string]interface{}{}
	}
	return e.Extra
}
