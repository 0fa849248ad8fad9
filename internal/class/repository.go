package class

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const classColumns = `id, name, description, instructor, class_datetime, duration_minutes, max_slots, available_slots, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c FitnessClass) (*FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (name, description, instructor, class_datetime, duration_minutes, max_slots, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + classColumns

	var created FitnessClass
	err := r.db.GetContext(ctx, &created, query,
		c.Name, c.Description, c.Instructor, c.ClassDatetime, c.DurationMinutes, c.MaxSlots)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE is_active = TRUE AND class_datetime > $1
		ORDER BY class_datetime ASC
	`

	classes := []FitnessClass{}
	err := r.db.SelectContext(ctx, &classes, query, now)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE id = $1 AND is_active = TRUE
	`

	var c FitnessClass
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// GetByIDs fetches classes regardless of active state, keyed by id. Used for
// booking snapshots, where a deactivated class must still resolve.
func (r *repository) GetByIDs(ctx context.Context, ids []int) (map[int]FitnessClass, error) {
	result := make(map[int]FitnessClass, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+classColumns+`
		FROM fitness_classes
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}

	var classes []FitnessClass
	if err := r.db.SelectContext(ctx, &classes, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, c := range classes {
		result[c.ID] = c
	}

	return result, nil
}

func (r *repository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM fitness_classes`)
	if err != nil {
		return 0, err
	}

	return count, nil
}
