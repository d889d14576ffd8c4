package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/leave"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/service/paycalc"
	"github.com/shopspring/decimal"
)

// EntitlementCalculator runs the statutory holiday entitlement test: an
// active holiday, 30 days of employment, then a classified trailing window
// averaged into paid hours. Every ineligibility gate is a zero-hours
// outcome, never an error.
type EntitlementCalculator struct {
	policy         paycalc.Policy
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	scheduleRepo   schedule.WorkScheduleRepository
	holidayRepo    holiday.HolidayRepository
	leaveRepo      leave.LeaveRepository
}

func NewEntitlementCalculator(
	policy paycalc.Policy,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) *EntitlementCalculator {
	return &EntitlementCalculator{
		policy:         policy,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
	}
}

// Compute evaluates the entitlement of an employee for a holiday date.
func (c *EntitlementCalculator) Compute(ctx context.Context, employeeID string, holidayDate time.Time, companyID string) (paycalc.EntitlementOutcome, error) {
	emp, err := c.employeeRepo.CurrentEmployment(ctx, employeeID, holidayDate)
	if err != nil {
		if errors.Is(err, employee.ErrEmploymentNotFound) {
			return paycalc.Ineligible("not employed on the holiday date"), nil
		}
		return paycalc.EntitlementOutcome{}, fmt.Errorf("failed to resolve employment: %w", err)
	}

	entry, err := c.holidayRepo.GetByDate(ctx, companyID, holidayDate)
	if err != nil {
		return paycalc.EntitlementOutcome{}, fmt.Errorf("failed to look up holiday: %w", err)
	}
	if entry == nil || !entry.Active {
		return paycalc.Ineligible("no active holiday on this date"), nil
	}
	if entry.UnionOnly && !emp.IsUnionMember {
		return paycalc.Ineligible("holiday applies to union members only"), nil
	}

	if emp.DaysEmployedBy(holidayDate) < c.policy.StatWindowDays {
		return paycalc.Ineligible("employed fewer than 30 days before the holiday"), nil
	}

	window, err := c.classifyWindow(ctx, emp, holidayDate, companyID)
	if err != nil {
		return paycalc.EntitlementOutcome{}, err
	}

	return c.policy.EntitlementFromWindow(window), nil
}

// classifyWindow classifies every day of the trailing window into exactly
// one category with the hours it contributes.
func (c *EntitlementCalculator) classifyWindow(ctx context.Context, emp employee.Employment, holidayDate time.Time, companyID string) ([]paycalc.WindowDay, error) {
	windowStart := holidayDate.AddDate(0, 0, -c.policy.StatWindowDays)
	windowEnd := holidayDate.AddDate(0, 0, -1)

	records, err := c.attendanceRepo.ListForPeriod(ctx, emp.EmployeeID, windowStart, windowEnd, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance history: %w", err)
	}
	byDate := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	leaves, err := c.leaveRepo.ListInRange(ctx, emp.EmployeeID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaves: %w", err)
	}
	typeCodes := make(map[string]string)
	for _, l := range leaves {
		if _, ok := typeCodes[l.LeaveTypeID]; ok {
			continue
		}
		code, err := c.leaveRepo.TypeCode(ctx, l.LeaveTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve leave type: %w", err)
		}
		typeCodes[l.LeaveTypeID] = code
	}

	pastHolidays, err := c.holidayRepo.ListInRange(ctx, companyID, windowStart, windowEnd, emp.IsUnionMember)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	holidayDates := make(map[string]bool, len(pastHolidays))
	for _, h := range pastHolidays {
		holidayDates[h.Date.Format("2006-01-02")] = true
	}

	var window []paycalc.WindowDay
	for date := windowStart; !date.After(windowEnd); date = date.AddDate(0, 0, 1) {
		day, err := c.classifyDay(ctx, emp, date, byDate, leaves, typeCodes, holidayDates)
		if err != nil {
			return nil, err
		}
		window = append(window, day)
	}
	return window, nil
}

func (c *EntitlementCalculator) classifyDay(
	ctx context.Context,
	emp employee.Employment,
	date time.Time,
	byDate map[string]attendance.Attendance,
	leaves []leave.LeaveRecord,
	typeCodes map[string]string,
	holidayDates map[string]bool,
) (paycalc.WindowDay, error) {
	day := paycalc.WindowDay{Date: date, Category: paycalc.DayNone, Hours: decimal.Zero}
	key := date.Format("2006-01-02")

	if rec, ok := byDate[key]; ok {
		if rec.HasPunches() {
			day.Category = paycalc.DayWorked
			day.Hours = decimal.NewFromFloat(rec.EffectiveRegularHours())
			return day, nil
		}
		if rec.EffectiveRegularHours() > 0 {
			// Paid hours without punches: sick time recorded directly on
			// the attendance row.
			day.Category = paycalc.DaySickFromAttendance
			day.Hours = decimal.NewFromFloat(rec.EffectiveRegularHours())
			return day, nil
		}
	}

	for _, l := range leaves {
		if !l.CoversDate(date) {
			continue
		}
		switch typeCodes[l.LeaveTypeID] {
		case leave.TypeCodeVacation:
			day.Category = paycalc.DayVacation
		case leave.TypeCodeSick:
			day.Category = paycalc.DaySickLeave
		default:
			continue
		}
		hours, err := c.scheduledHoursFor(ctx, emp, date)
		if err != nil {
			return paycalc.WindowDay{}, err
		}
		day.Hours = hours
		return day, nil
	}

	if holidayDates[key] {
		day.Category = paycalc.DayPastHoliday
		if rec, ok := byDate[key]; ok {
			day.Hours = decimal.NewFromFloat(rec.EffectiveStatHolidayHours())
		}
		return day, nil
	}

	return day, nil
}

// scheduledHoursFor returns the employee's scheduled hours on the date's
// weekday, zero when no schedule or window covers it.
func (c *EntitlementCalculator) scheduledHoursFor(ctx context.Context, emp employee.Employment, date time.Time) (decimal.Decimal, error) {
	sched, err := c.scheduleRepo.GetForEmployeeDate(ctx, emp.EmployeeID, date, emp.CompanyID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve schedule: %w", err)
	}
	start, end := sched.DayTimes(date.Weekday())
	return paycalc.ScheduledHours(start, end), nil
}
