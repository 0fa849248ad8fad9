package class

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/logger"
	"classbook/internal/timezone"
)

var ErrInvalidClassData = errors.New("invalid class data")

type Service interface {
	ListUpcoming(ctx context.Context, displayTimezone string) ([]Response, error)
	CreateClass(ctx context.Context, req CreateClassRequest) (*Response, error)
	SeedSampleClasses(ctx context.Context) error
}

type service struct {
	repo  Repository
	tz    *timezone.Service
	cache *Cache
}

func NewService(repo Repository, tz *timezone.Service, cache *Cache) Service {
	return &service{
		repo:  repo,
		tz:    tz,
		cache: cache,
	}
}

// ListUpcoming returns active future classes ordered by start time, with
// datetimes projected into displayTimezone (the reference timezone when
// empty). Stored values are never mutated.
func (s *service) ListUpcoming(ctx context.Context, displayTimezone string) ([]Response, error) {
	if displayTimezone == "" {
		displayTimezone = s.tz.Reference().String()
	}

	loc, err := s.tz.Load(displayTimezone)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.GetListing(ctx, displayTimezone); ok {
		return cached, nil
	}

	classes, err := s.repo.ListUpcoming(ctx, s.tz.Now())
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(classes))
	for i := range classes {
		responses = append(responses, classes[i].ToResponse(loc))
	}

	s.cache.SetListing(ctx, displayTimezone, responses)

	logger.Info("retrieved upcoming classes", "count", len(responses), "timezone", displayTimezone)
	return responses, nil
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*Response, error) {
	classDatetime, err := s.tz.ParseInReference(req.ClassDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClassData, err)
	}

	if !classDatetime.After(s.tz.Now()) {
		return nil, fmt.Errorf("%w: class datetime must be in the future", ErrInvalidClassData)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 60
	}

	created, err := s.repo.Create(ctx, FitnessClass{
		Name:            req.Name,
		Description:     req.Description,
		Instructor:      req.Instructor,
		ClassDatetime:   classDatetime,
		DurationMinutes: duration,
		MaxSlots:        req.MaxSlots,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Flush(ctx)

	logger.Info("class created", "class_id", created.ID, "name", created.Name)
	resp := created.ToResponse(s.tz.Reference())
	return &resp, nil
}

// SeedSampleClasses inserts a few starter classes when the table is empty.
func (s *service) SeedSampleClasses(ctx context.Context) error {
	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("sample classes already exist")
		return nil
	}

	tomorrow := s.tz.Now().AddDate(0, 0, 1)
	at := func(hour, minute int) time.Time {
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, minute, 0, 0, s.tz.Reference())
	}

	samples := []FitnessClass{
		{
			Name:            "Morning Yoga",
			Description:     strPtr("Start your day with peaceful yoga practice"),
			Instructor:      "Sarah Johnson",
			ClassDatetime:   at(8, 0),
			DurationMinutes: 60,
			MaxSlots:        15,
		},
		{
			Name:            "High Energy Zumba",
			Description:     strPtr("Dance your way to fitness with energetic Zumba"),
			Instructor:      "Carlos Rodriguez",
			ClassDatetime:   at(18, 30),
			DurationMinutes: 45,
			MaxSlots:        20,
		},
		{
			Name:            "HIIT Intensive",
			Description:     strPtr("High-intensity interval training for maximum results"),
			Instructor:      "Mike Thompson",
			ClassDatetime:   at(19, 0),
			DurationMinutes: 30,
			MaxSlots:        12,
		},
	}

	for _, sample := range samples {
		if _, err := s.repo.Create(ctx, sample); err != nil {
			return fmt.Errorf("failed to seed class %q: %w", sample.Name, err)
		}
	}

	logger.Info("sample classes created", "count", len(samples))
	return nil
}

func strPtr(s string) *string {
	return &s
}
