package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// Create implements holiday.HolidayRepository. One entry per (company, date).
func (h *holidayRepository) Create(ctx context.Context, entry holiday.HolidayEntry) (holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, h.db)

	id, err := uuid.NewV7()
	if err != nil {
		return holiday.HolidayEntry{}, fmt.Errorf("failed to generate id: %w", err)
	}
	entry.ID = id.String()

	query := `
		INSERT INTO holidays (id, company_id, date, name, active, union_only)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		entry.ID, entry.CompanyID, entry.Date, entry.Name, entry.Active, entry.UnionOnly,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayEntry{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayEntry{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return entry, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepository) GetByID(ctx context.Context, id string, companyID string) (holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, active, union_only, created_at, updated_at
		FROM holidays
		WHERE id = $1 AND company_id = $2
	`

	var entry holiday.HolidayEntry
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&entry.ID, &entry.CompanyID, &entry.Date, &entry.Name,
		&entry.Active, &entry.UnionOnly, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.HolidayEntry{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayEntry{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return entry, nil
}

// GetByDate implements holiday.HolidayRepository. Inactive entries are not
// holidays as far as the calculators are concerned; they are returned here
// so callers can distinguish inactive from absent.
func (h *holidayRepository) GetByDate(ctx context.Context, companyID string, date time.Time) (*holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, active, union_only, created_at, updated_at
		FROM holidays
		WHERE company_id = $1 AND date = $2
		LIMIT 1
	`

	var entry holiday.HolidayEntry
	err := q.QueryRow(ctx, query, companyID, date).Scan(
		&entry.ID, &entry.CompanyID, &entry.Date, &entry.Name,
		&entry.Active, &entry.UnionOnly, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // not a holiday
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}
	return &entry, nil
}

// ListInRange implements holiday.HolidayRepository.
func (h *holidayRepository) ListInRange(ctx context.Context, companyID string, start, end time.Time, includeUnionOnly bool) ([]holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, active, union_only, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		  AND date BETWEEN $2 AND $3
		  AND active = TRUE
	`
	args := []interface{}{companyID, start, end}
	if !includeUnionOnly {
		query += ` AND union_only = FALSE`
	}
	query += ` ORDER BY date ASC`

	return h.queryEntries(ctx, q, query, args...)
}

// ListYear implements holiday.HolidayRepository.
func (h *holidayRepository) ListYear(ctx context.Context, companyID string, year int) ([]holiday.HolidayEntry, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, active, union_only, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		ORDER BY date ASC
	`
	return h.queryEntries(ctx, q, query, companyID, year)
}

func (h *holidayRepository) queryEntries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]holiday.HolidayEntry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var entries []holiday.HolidayEntry
	for rows.Next() {
		var entry holiday.HolidayEntry
		err := rows.Scan(
			&entry.ID, &entry.CompanyID, &entry.Date, &entry.Name,
			&entry.Active, &entry.UnionOnly, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepository) Update(ctx context.Context, entry holiday.HolidayEntry) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `
		UPDATE holidays
		SET name = $1, active = $2, union_only = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5
	`, entry.Name, entry.Active, entry.UnionOnly, entry.ID, entry.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
