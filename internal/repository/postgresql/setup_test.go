package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// requireTestDB connects to the test database once per run. Tests are
// skipped when TEST_DATABASE_URL is unset so the suite never demands a
// database the environment does not have.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database-backed tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	if testDBErr != nil {
		t.Fatalf("failed to connect to test database: %v", testDBErr)
	}
	return testDB
}

// resetTables truncates every table the repository tests touch.
func resetTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()

	tables := []string{
		"attendances",
		"employee_schedule_assignments",
		"work_schedule_days",
		"work_schedules",
		"holidays",
		"employments",
		"employees",
		"companies",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestCompany(t *testing.T, ctx context.Context, db *database.DB) string {
	t.Helper()

	var companyID string
	err := db.QueryRow(ctx, `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test Company', NOW(), NOW())
		RETURNING id
	`).Scan(&companyID)
	require.NoError(t, err)
	return companyID
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, companyID, fullName string) string {
	t.Helper()

	var employeeID string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, company_id, full_name, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id
	`, companyID, fullName).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, h, m, s int) *time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, time.UTC)
	return &t
}
