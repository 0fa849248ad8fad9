// Package timezone provides conversion between the reference timezone all
// class datetimes are stored in and any requested IANA display timezone.
package timezone

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimezone = errors.New("unknown timezone")

// Service converts timestamps between the configured reference timezone and
// requested display timezones. It carries no state beyond the reference
// location and is safe for concurrent use.
type Service struct {
	ref *time.Location
}

func New(referenceName string) (*Service, error) {
	loc, err := time.LoadLocation(referenceName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, referenceName)
	}
	return &Service{ref: loc}, nil
}

// Reference returns the reference location.
func (s *Service) Reference() *time.Location {
	return s.ref
}

// Now returns the current time expressed in the reference timezone.
func (s *Service) Now() time.Time {
	return time.Now().In(s.ref)
}

// Load resolves an IANA timezone identifier.
func (s *Service) Load(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// Convert re-expresses t in the named timezone. The instant is unchanged,
// only the offset differs.
func (s *Service) Convert(t time.Time, name string) (time.Time, error) {
	loc, err := s.Load(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ParseInReference parses an RFC3339 timestamp. A value without an offset is
// interpreted as reference-timezone wall time.
func (s *Service) ParseInReference(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(s.ref), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, s.ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: expected RFC3339", value)
	}
	return t, nil
}
