package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

// GetPayrollConfig implements company.CompanyRepository.
func (c *companyRepository) GetPayrollConfig(ctx context.Context, companyID string) (company.PayrollConfig, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, pay_frequency, pay_period_start_date, payroll_due_start_date
		FROM companies
		WHERE id = $1
	`

	var cfg company.PayrollConfig
	err := q.QueryRow(ctx, query, companyID).Scan(
		&cfg.CompanyID, &cfg.PayFrequency, &cfg.PayPeriodStartDate, &cfg.PayrollDueStartDate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.PayrollConfig{}, company.ErrCompanyNotFound
		}
		return company.PayrollConfig{}, fmt.Errorf("failed to get payroll config: %w", err)
	}
	return cfg, nil
}

// ListIDs implements company.CompanyRepository.
func (c *companyRepository) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, c.db)

	rows, err := q.Query(ctx, `SELECT id FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
