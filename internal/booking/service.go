package booking

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"classbook/internal/class"
	"classbook/internal/logger"
	"classbook/internal/metrics"
	"classbook/internal/timezone"
)

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Response, error)
	ListByEmail(ctx context.Context, clientEmail string) (*ListResponse, error)
}

type service struct {
	repo      Repository
	classRepo class.Repository
	tz        *timezone.Service
	cache     *class.Cache
}

func NewService(repo Repository, classRepo class.Repository, tz *timezone.Service, cache *class.Cache) Service {
	return &service{
		repo:      repo,
		classRepo: classRepo,
		tz:        tz,
		cache:     cache,
	}
}

// CreateBooking normalizes the client name, generates a reference and runs
// the transactional create. Domain failures pass through unchanged; anything
// unexpected is logged and reported as invalid booking data without the
// underlying cause.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Response, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		metrics.RecordBookingFailure("invalid_booking_data")
		return nil, &InvalidBookingDataError{Reason: "client name cannot be empty"}
	}
	name = cases.Title(language.English).String(name)

	params := CreateParams{
		ClassID:     req.ClassID,
		ClientName:  name,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
		Reference:   NewReference(),
	}

	b, fc, err := s.repo.CreateBooking(ctx, params, s.tz.Now())
	if errors.Is(err, ErrReferenceTaken) {
		params.Reference = NewReference()
		b, fc, err = s.repo.CreateBooking(ctx, params, s.tz.Now())
	}
	if err != nil {
		var domainErr DomainError
		if errors.As(err, &domainErr) {
			metrics.RecordBookingFailure(domainErr.ErrorType())
			return nil, err
		}
		logger.Error("booking creation failed", "class_id", req.ClassID, "error", err)
		metrics.RecordBookingFailure("internal")
		return nil, &InvalidBookingDataError{Reason: "failed to create booking"}
	}

	s.cache.Flush(ctx)
	metrics.RecordBooking()
	logger.Info("booking created", "reference", b.Reference, "class_id", b.ClassID)

	return &Response{
		Booking:      *b,
		FitnessClass: fc.ToResponse(s.tz.Reference()),
	}, nil
}

// ListByEmail returns every booking for the exact email, newest first,
// cancelled included, each with its class snapshot.
func (s *service) ListByEmail(ctx context.Context, clientEmail string) (*ListResponse, error) {
	bookings, err := s.repo.ListByEmail(ctx, clientEmail)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(bookings))
	seen := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.ClassID] {
			seen[b.ClassID] = true
			ids = append(ids, b.ClassID)
		}
	}

	classes, err := s.classRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(bookings))
	for _, b := range bookings {
		resp := Response{Booking: b}
		if fc, ok := classes[b.ClassID]; ok {
			resp.FitnessClass = fc.ToResponse(s.tz.Reference())
		}
		responses = append(responses, resp)
	}

	logger.Info("retrieved bookings", "count", len(responses), "client_email", clientEmail)
	return &ListResponse{
		Bookings:    responses,
		TotalCount:  len(responses),
		ClientEmail: clientEmail,
	}, nil
}

// NewReference builds a human-shareable booking token: "FB" plus eight
// uppercase hex characters. Global uniqueness is enforced by the unique
// index, not the generator.
func NewReference() string {
	id := uuid.New()
	return "FB" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
