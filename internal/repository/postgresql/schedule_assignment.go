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

type scheduleAssignmentRepository struct {
	db *database.DB
}

// Create implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) Create(ctx context.Context, assignment schedule.EmployeeScheduleAssignment) (schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.EmployeeScheduleAssignment{}, fmt.Errorf("failed to generate id: %w", err)
	}
	assignment.ID = id.String()

	query := `
		INSERT INTO employee_schedule_assignments (id, employee_id, work_schedule_id, effective_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		assignment.ID,
		assignment.EmployeeID,
		assignment.WorkScheduleID,
		assignment.EffectiveDate,
		assignment.EndDate,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return schedule.EmployeeScheduleAssignment{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}

	return assignment, nil
}

// ListByEmployee implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, work_schedule_id, effective_date, end_date, created_at, updated_at
		FROM employee_schedule_assignments
		WHERE employee_id = $1
		ORDER BY effective_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.EmployeeScheduleAssignment
	for rows.Next() {
		var a schedule.EmployeeScheduleAssignment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.WorkScheduleID, &a.EffectiveDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetOpenEnded implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) GetOpenEnded(ctx context.Context, employeeID string) (*schedule.EmployeeScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, work_schedule_id, effective_date, end_date, created_at, updated_at
		FROM employee_schedule_assignments
		WHERE employee_id = $1 AND end_date IS NULL
		ORDER BY effective_date DESC
		LIMIT 1
	`

	var a schedule.EmployeeScheduleAssignment
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.WorkScheduleID, &a.EffectiveDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no open-ended assignment
		}
		return nil, fmt.Errorf("failed to get open-ended assignment: %w", err)
	}
	return &a, nil
}

// CloseAssignment implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) CloseAssignment(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `
		UPDATE employee_schedule_assignments
		SET end_date = $1, updated_at = NOW()
		WHERE id = $2
	`, endDate, id)
	if err != nil {
		return fmt.Errorf("failed to close assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

func NewScheduleAssignmentRepository(db *database.DB) schedule.ScheduleAssignmentRepository {
	return &scheduleAssignmentRepository{db: db}
}
