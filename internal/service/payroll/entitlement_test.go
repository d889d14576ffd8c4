package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/leave"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/service/paycalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the calculator. Embedding the interface
// keeps the fakes small; only the methods Compute reaches are implemented.

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp *employee.Employment
}

func (f *fakeEmployeeRepo) CurrentEmployment(_ context.Context, _ string, _ time.Time) (employee.Employment, error) {
	if f.emp == nil {
		return employee.Employment{}, employee.ErrEmploymentNotFound
	}
	return *f.emp, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListForPeriod(_ context.Context, _ string, start, end time.Time, _ string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holiday.HolidayRepository
	entries []holiday.HolidayEntry
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, _ string, d time.Time) (*holiday.HolidayEntry, error) {
	for i := range f.entries {
		if f.entries[i].Date.Equal(d) {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeHolidayRepo) ListInRange(_ context.Context, _ string, start, end time.Time, includeUnionOnly bool) ([]holiday.HolidayEntry, error) {
	var out []holiday.HolidayEntry
	for _, e := range f.entries {
		if e.Date.Before(start) || e.Date.After(end) || !e.Active {
			continue
		}
		if e.UnionOnly && !includeUnionOnly {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedule.WorkScheduleRepository
}

func (f *fakeScheduleRepo) GetForEmployeeDate(_ context.Context, _ string, _ time.Time, _ string) (schedule.WorkSchedule, error) {
	return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
}

type fakeLeaveRepo struct {
	leave.LeaveRepository
}

func (f *fakeLeaveRepo) ListInRange(_ context.Context, _ string, _, _ time.Time) ([]leave.LeaveRecord, error) {
	return nil, nil
}

// workedRecords builds n worked days with complete punches directly before
// the holiday.
func workedRecords(holidayDate time.Time, n int, hours float64) []attendance.Attendance {
	records := make([]attendance.Attendance, 0, n)
	for i := 1; i <= n; i++ {
		d := holidayDate.AddDate(0, 0, -i)
		in := time.Date(d.Year(), d.Month(), d.Day(), 7, 0, 0, 0, time.UTC)
		out := in.Add(time.Duration(hours * float64(time.Hour)))
		records = append(records, attendance.Attendance{
			EmployeeID:   "emp-1",
			Date:         d,
			CheckIn:      &in,
			CheckOut:     &out,
			RegularHours: hours,
		})
	}
	return records
}

func newCalculator(emp *employee.Employment, records []attendance.Attendance, entries []holiday.HolidayEntry) *EntitlementCalculator {
	return NewEntitlementCalculator(
		paycalc.DefaultPolicy(),
		&fakeAttendanceRepo{records: records},
		&fakeEmployeeRepo{emp: emp},
		&fakeScheduleRepo{},
		&fakeHolidayRepo{entries: entries},
		&fakeLeaveRepo{},
	)
}

func TestComputeNotEmployed(t *testing.T) {
	holidayDate := date(2025, time.July, 1)
	calc := newCalculator(nil, nil, []holiday.HolidayEntry{
		{Date: holidayDate, Name: "Canada Day", Active: true},
	})

	outcome, err := calc.Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.False(t, outcome.Eligible)
	assert.True(t, outcome.Hours.IsZero())
	assert.Equal(t, "not employed on the holiday date", outcome.Reason)
}

func TestComputeHolidayGates(t *testing.T) {
	holidayDate := date(2025, time.July, 1)
	emp := &employee.Employment{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		StartDate:  date(2024, time.January, 1),
	}
	records := workedRecords(holidayDate, 15, 8)

	t.Run("no holiday entry", func(t *testing.T) {
		calc := newCalculator(emp, records, nil)
		outcome, err := calc.Compute(context.Background(), "emp-1", holidayDate, "company-1")
		require.NoError(t, err)
		assert.False(t, outcome.Eligible)
		assert.True(t, outcome.Hours.IsZero())
	})

	t.Run("inactive holiday", func(t *testing.T) {
		calc := newCalculator(emp, records, []holiday.HolidayEntry{
			{Date: holidayDate, Name: "Canada Day", Active: false},
		})
		outcome, err := calc.Compute(context.Background(), "emp-1", holidayDate, "company-1")
		require.NoError(t, err)
		assert.False(t, outcome.Eligible)
		assert.True(t, outcome.Hours.IsZero())
	})

	t.Run("active holiday", func(t *testing.T) {
		calc := newCalculator(emp, records, []holiday.HolidayEntry{
			{Date: holidayDate, Name: "Canada Day", Active: true},
		})
		outcome, err := calc.Compute(context.Background(), "emp-1", holidayDate, "company-1")
		require.NoError(t, err)
		assert.True(t, outcome.Eligible)
		assert.True(t, outcome.Hours.Equal(decimal.NewFromInt(8)), "got %s", outcome.Hours)
	})
}

func TestComputeUnionGate(t *testing.T) {
	holidayDate := date(2025, time.July, 1)
	entries := []holiday.HolidayEntry{
		{Date: holidayDate, Name: "Union Day", Active: true, UnionOnly: true},
	}
	records := workedRecords(holidayDate, 15, 8)

	nonMember := &employee.Employment{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		StartDate:  date(2024, time.January, 1),
	}
	outcome, err := newCalculator(nonMember, records, entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.False(t, outcome.Eligible)
	assert.True(t, outcome.Hours.IsZero())
	assert.Equal(t, "holiday applies to union members only", outcome.Reason)

	member := &employee.Employment{
		EmployeeID:    "emp-1",
		CompanyID:     "company-1",
		StartDate:     date(2024, time.January, 1),
		IsUnionMember: true,
	}
	outcome, err = newCalculator(member, records, entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.True(t, outcome.Eligible)
	assert.True(t, outcome.Hours.Equal(decimal.NewFromInt(8)))
}

func TestComputeHireDateBoundary(t *testing.T) {
	holidayDate := date(2025, time.July, 1)
	entries := []holiday.HolidayEntry{
		{Date: holidayDate, Name: "Canada Day", Active: true},
	}
	records := workedRecords(holidayDate, 15, 8)

	hired29 := &employee.Employment{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		StartDate:  holidayDate.AddDate(0, 0, -29),
	}
	outcome, err := newCalculator(hired29, records, entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.False(t, outcome.Eligible)
	assert.True(t, outcome.Hours.IsZero())
	assert.Equal(t, "employed fewer than 30 days before the holiday", outcome.Reason)

	hired30 := &employee.Employment{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		StartDate:  holidayDate.AddDate(0, 0, -30),
	}
	outcome, err = newCalculator(hired30, records, entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.True(t, outcome.Eligible)
	assert.True(t, outcome.Hours.Equal(decimal.NewFromInt(8)))
}

func TestComputeEligibleDayBoundary(t *testing.T) {
	holidayDate := date(2025, time.July, 1)
	entries := []holiday.HolidayEntry{
		{Date: holidayDate, Name: "Canada Day", Active: true},
	}
	emp := &employee.Employment{
		EmployeeID: "emp-1",
		CompanyID:  "company-1",
		StartDate:  date(2024, time.January, 1),
	}

	outcome, err := newCalculator(emp, workedRecords(holidayDate, 14, 8), entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.False(t, outcome.Eligible)
	assert.Equal(t, 14, outcome.DaysEligible)
	assert.True(t, outcome.Hours.IsZero())

	outcome, err = newCalculator(emp, workedRecords(holidayDate, 15, 8), entries).
		Compute(context.Background(), "emp-1", holidayDate, "company-1")
	require.NoError(t, err)
	assert.True(t, outcome.Eligible)
	assert.Equal(t, 15, outcome.DaysEligible)
	assert.Equal(t, 15, outcome.DaysWorked)
	assert.True(t, outcome.Hours.Equal(decimal.NewFromInt(8)))
}
