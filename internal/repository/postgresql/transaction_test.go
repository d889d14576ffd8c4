package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransactionCommitAndRollback(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	resetTables(t, ctx, db)

	companyID := createTestCompany(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, companyID, "Ada Tremblay")
	repo := postgresql.NewAttendanceRepository(db)

	date := day(2025, time.June, 2)

	// A failing callback rolls the whole write back.
	boom := errors.New("boom")
	err := postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if _, err := repo.Create(txCtx, attendance.Attendance{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Date:       date,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	require.NoError(t, err)
	assert.Nil(t, got, "rolled-back write must not be visible")

	// The same write commits when the callback succeeds.
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		_, err := repo.Create(txCtx, attendance.Attendance{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Date:       date,
		})
		return err
	})
	require.NoError(t, err)

	got, err = repo.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	require.NoError(t, err)
	require.NotNil(t, got)
}
