package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// CurrentEmployment implements employee.EmployeeRepository.
func (e *employeeRepository) CurrentEmployment(ctx context.Context, employeeID string, asOf time.Time) (employee.Employment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id, company_id, start_date, end_date,
			   is_driver, count_all_ot, is_union_member
		FROM employments
		WHERE employee_id = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date DESC
		LIMIT 1
	`

	var emp employee.Employment
	err := q.QueryRow(ctx, query, employeeID, asOf).Scan(
		&emp.EmployeeID, &emp.CompanyID, &emp.StartDate, &emp.EndDate,
		&emp.IsDriver, &emp.CountAllOT, &emp.IsUnionMember,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employment{}, employee.ErrEmploymentNotFound
		}
		return employee.Employment{}, fmt.Errorf("failed to get current employment: %w", err)
	}
	return emp, nil
}

// ListActiveByCompany implements employee.EmployeeRepository.
func (e *employeeRepository) ListActiveByCompany(ctx context.Context, companyID string, asOf time.Time) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT employee_id
		FROM employments
		WHERE company_id = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
