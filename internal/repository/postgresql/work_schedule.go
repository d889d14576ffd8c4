package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

// Create implements schedule.WorkScheduleRepository. The schedule and its
// day rows are inserted together; schedules are immutable after creation.
func (w *workScheduleRepository) Create(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to generate id: %w", err)
	}
	sched.ID = id.String()

	query := `
		INSERT INTO work_schedules (id, company_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query, sched.ID, sched.CompanyID, sched.Name).
		Scan(&sched.CreatedAt, &sched.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	dayQuery := `
		INSERT INTO work_schedule_days (id, work_schedule_id, weekday, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range sched.Days {
		dayID, err := uuid.NewV7()
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to generate id: %w", err)
		}
		sched.Days[i].ID = dayID.String()
		sched.Days[i].WorkScheduleID = sched.ID

		_, err = q.Exec(ctx, dayQuery,
			sched.Days[i].ID,
			sched.ID,
			int(sched.Days[i].Weekday),
			sched.Days[i].StartTime,
			sched.Days[i].EndTime,
		)
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to create work schedule day: %w", err)
		}
	}

	return sched, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetByID(ctx context.Context, id string, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND company_id = $2
	`

	var sched schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&sched.ID, &sched.CompanyID, &sched.Name, &sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	if err := w.loadDays(ctx, &sched); err != nil {
		return schedule.WorkSchedule{}, err
	}
	return sched, nil
}

// List implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) List(ctx context.Context, companyID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM work_schedules
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var sched schedule.WorkSchedule
		if err := rows.Scan(&sched.ID, &sched.CompanyID, &sched.Name, &sched.CreatedAt, &sched.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range schedules {
		if err := w.loadDays(ctx, &schedules[i]); err != nil {
			return nil, err
		}
	}
	return schedules, nil
}

// GetForEmployeeDate implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetForEmployeeDate(ctx context.Context, employeeID string, date time.Time, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ws.id, ws.company_id, ws.name, ws.created_at, ws.updated_at
		FROM employee_schedule_assignments esa
		JOIN work_schedules ws ON ws.id = esa.work_schedule_id
		WHERE esa.employee_id = $1
		  AND esa.effective_date <= $2
		  AND (esa.end_date IS NULL OR esa.end_date >= $2)
		  AND ws.company_id = $3
		ORDER BY esa.effective_date DESC
		LIMIT 1
	`

	var sched schedule.WorkSchedule
	err := q.QueryRow(ctx, query, employeeID, date, companyID).Scan(
		&sched.ID, &sched.CompanyID, &sched.Name, &sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to resolve schedule for employee date: %w", err)
	}

	if err := w.loadDays(ctx, &sched); err != nil {
		return schedule.WorkSchedule{}, err
	}
	return sched, nil
}

func (w *workScheduleRepository) loadDays(ctx context.Context, sched *schedule.WorkSchedule) error {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, work_schedule_id, weekday, start_time, end_time
		FROM work_schedule_days
		WHERE work_schedule_id = $1
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, query, sched.ID)
	if err != nil {
		return fmt.Errorf("failed to load work schedule days: %w", err)
	}
	defer rows.Close()

	sched.Days = nil
	for rows.Next() {
		var day schedule.WorkScheduleDay
		var weekday int
		if err := rows.Scan(&day.ID, &day.WorkScheduleID, &weekday, &day.StartTime, &day.EndTime); err != nil {
			return fmt.Errorf("failed to scan work schedule day: %w", err)
		}
		day.Weekday = time.Weekday(weekday)
		sched.Days = append(sched.Days, day)
	}
	return rows.Err()
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}
