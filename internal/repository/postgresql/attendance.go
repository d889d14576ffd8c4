package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, company_id, date,
	check_in, check_out, rounded_check_in, rounded_check_out,
	regular_hours, ot_hours, weekend_ot_hours, stat_holiday_hours,
	is_manual_override, override_check_in, override_check_out,
	override_regular_hours, override_ot_hours, override_weekend_ot_hours,
	override_stat_holiday_hours,
	remarks, edit_reason, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
		&att.CheckIn, &att.CheckOut, &att.RoundedCheckIn, &att.RoundedCheckOut,
		&att.RegularHours, &att.OvertimeHours, &att.WeekendOTHours, &att.StatHolidayHours,
		&att.IsManualOverride, &att.OverrideCheckIn, &att.OverrideCheckOut,
		&att.OverrideRegularHours, &att.OverrideOvertimeHours, &att.OverrideWeekendOTHours,
		&att.OverrideStatHolidayHours,
		&att.Remarks, &att.EditReason, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The unique constraint
// on (employee_id, date) is the single writer-wins point for concurrent
// creation.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate id: %w", err)
	}
	newAttendance.ID = id.String()

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, date,
			check_in, check_out, rounded_check_in, rounded_check_out,
			regular_hours, ot_hours, weekend_ot_hours, stat_holiday_hours,
			is_manual_override, override_check_in, override_check_out,
			override_regular_hours, override_ot_hours, override_weekend_ot_hours,
			override_stat_holiday_hours, remarks, edit_reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.CompanyID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.RoundedCheckIn,
		newAttendance.RoundedCheckOut,
		newAttendance.RegularHours,
		newAttendance.OvertimeHours,
		newAttendance.WeekendOTHours,
		newAttendance.StatHolidayHours,
		newAttendance.IsManualOverride,
		newAttendance.OverrideCheckIn,
		newAttendance.OverrideCheckOut,
		newAttendance.OverrideRegularHours,
		newAttendance.OverrideOvertimeHours,
		newAttendance.OverrideWeekendOTHours,
		newAttendance.OverrideStatHolidayHours,
		newAttendance.Remarks,
		newAttendance.EditReason,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE id = $1 AND company_id = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this date
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListForPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForPeriod(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND company_id = $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, employeeID *string, start, end time.Time, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		  AND company_id = $3
	`
	args := []interface{}{start, end, companyID}
	if employeeID != nil {
		query += ` AND employee_id = $4`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY employee_id, date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	whereClauses := []string{"a.company_id = $1"}
	args := []interface{}{companyID}
	argPos := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereSQL := strings.Join(whereClauses, " AND ")

	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + whereSQL
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	sortBy := "a.date"
	switch filter.SortBy {
	case "employee":
		sortBy = "e.full_name"
	case "regular_hours":
		sortBy = "a.regular_hours"
	case "created_at":
		sortBy = "a.created_at"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.company_id, a.date,
			   a.check_in, a.check_out, a.rounded_check_in, a.rounded_check_out,
			   a.regular_hours, a.ot_hours, a.weekend_ot_hours, a.stat_holiday_hours,
			   a.is_manual_override, a.override_check_in, a.override_check_out,
			   a.override_regular_hours, a.override_ot_hours, a.override_weekend_ot_hours,
			   a.override_stat_holiday_hours,
			   a.remarks, a.edit_reason, a.created_at, a.updated_at,
			   e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereSQL, sortBy, sortOrder, argPos, argPos+1)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date,
			&att.CheckIn, &att.CheckOut, &att.RoundedCheckIn, &att.RoundedCheckOut,
			&att.RegularHours, &att.OvertimeHours, &att.WeekendOTHours, &att.StatHolidayHours,
			&att.IsManualOverride, &att.OverrideCheckIn, &att.OverrideCheckOut,
			&att.OverrideRegularHours, &att.OverrideOvertimeHours, &att.OverrideWeekendOTHours,
			&att.OverrideStatHolidayHours,
			&att.Remarks, &att.EditReason, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	return records, total, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2,
			rounded_check_in = $3, rounded_check_out = $4,
			regular_hours = $5, ot_hours = $6, weekend_ot_hours = $7, stat_holiday_hours = $8,
			is_manual_override = $9,
			override_check_in = $10, override_check_out = $11,
			override_regular_hours = $12, override_ot_hours = $13,
			override_weekend_ot_hours = $14, override_stat_holiday_hours = $15,
			remarks = $16, edit_reason = $17,
			updated_at = NOW()
		WHERE id = $18 AND company_id = $19
	`

	tag, err := q.Exec(ctx, query,
		att.CheckIn, att.CheckOut,
		att.RoundedCheckIn, att.RoundedCheckOut,
		att.RegularHours, att.OvertimeHours, att.WeekendOTHours, att.StatHolidayHours,
		att.IsManualOverride,
		att.OverrideCheckIn, att.OverrideCheckOut,
		att.OverrideRegularHours, att.OverrideOvertimeHours,
		att.OverrideWeekendOTHours, att.OverrideStatHolidayHours,
		att.Remarks, att.EditReason,
		att.ID, att.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// DeleteRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteRange(ctx context.Context, employeeID *string, start, end time.Time, companyID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances WHERE date BETWEEN $1 AND $2 AND company_id = $3`
	args := []interface{}{start, end, companyID}
	if employeeID != nil {
		query += ` AND employee_id = $4`
		args = append(args, *employeeID)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance range: %w", err)
	}
	return tag.RowsAffected(), nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
