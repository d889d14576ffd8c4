package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/leave"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// ListInRange implements leave.LeaveRepository. Only approved leaves count
// toward pay calculations.
func (l *leaveRepository) ListInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type_id, start_date, end_date, day_count, status
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $2
		  AND end_date >= $3
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.LeaveTypeID, &rec.StartDate, &rec.EndDate, &rec.DayCount, &rec.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, rec)
	}
	return leaves, rows.Err()
}

// TypeCode implements leave.LeaveRepository.
func (l *leaveRepository) TypeCode(ctx context.Context, leaveTypeID string) (string, error) {
	q := GetQuerier(ctx, l.db)

	var code string
	err := q.QueryRow(ctx, `SELECT code FROM leave_types WHERE id = $1`, leaveTypeID).Scan(&code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", fmt.Errorf("leave type %s not found", leaveTypeID)
		}
		return "", fmt.Errorf("failed to get leave type code: %w", err)
	}
	return code, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
