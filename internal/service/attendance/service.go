package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
	"github.com/pacificpay/pacificpay-backend-go/internal/repository/postgresql"
	"github.com/pacificpay/pacificpay-backend-go/internal/service/paycalc"
	payrollsvc "github.com/pacificpay/pacificpay-backend-go/internal/service/payroll"
)

type AttendanceServiceImpl struct {
	db     *database.DB
	policy paycalc.Policy
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	holiday.HolidayRepository
	entitlement *payrollsvc.EntitlementCalculator
}

func NewAttendanceService(
	db *database.DB,
	policy paycalc.Policy,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	entitlement *payrollsvc.EntitlementCalculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                     db,
		policy:                 policy,
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: scheduleRepo,
		HolidayRepository:      holidayRepo,
		entitlement:            entitlement,
	}
}

func companyIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// punchAt places a time-of-day string onto the record's date. Empty string
// clears the punch.
func punchAt(date time.Time, s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	tod, ok := validator.IsValidTimeOfDay(*s)
	if !ok {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
	return &t
}

// derive recomputes every derived field of the record from its raw punches:
// rounded times, classified hours and statutory holiday hours. Raw punches
// are never modified.
func (a *AttendanceServiceImpl) derive(ctx context.Context, rec *attendance.Attendance) error {
	rec.RoundedCheckIn = a.policy.RoundCheckIn(rec.CheckIn)
	rec.RoundedCheckOut = a.policy.RoundCheckOut(rec.CheckOut)

	isDriver, countAllOT, isUnion := false, false, false
	emp, err := a.EmployeeRepository.CurrentEmployment(ctx, rec.EmployeeID, rec.Date)
	if err == nil {
		isDriver = emp.IsDriver
		countAllOT = emp.CountAllOT
		isUnion = emp.IsUnionMember
	} else if !errors.Is(err, employee.ErrEmploymentNotFound) {
		return fmt.Errorf("failed to resolve employment: %w", err)
	}

	var schedStart, schedEnd, weekdayStart *time.Time
	sched, err := a.WorkScheduleRepository.GetForEmployeeDate(ctx, rec.EmployeeID, rec.Date, rec.CompanyID)
	if err == nil {
		schedStart, schedEnd = sched.DayTimes(rec.Date.Weekday())
		weekdayStart = sched.WeekdayStart()
	} else if !errors.Is(err, schedule.ErrWorkScheduleNotFound) {
		return fmt.Errorf("failed to resolve schedule: %w", err)
	}

	breakdown := a.policy.ClassifyHours(paycalc.ClassifyInput{
		RoundedCheckIn:       rec.RoundedCheckIn,
		RoundedCheckOut:      rec.RoundedCheckOut,
		ScheduleStart:        schedStart,
		ScheduleEnd:          schedEnd,
		Date:                 rec.Date,
		IsDriver:             isDriver,
		CountAllOT:           countAllOT,
		WeekdayScheduleStart: weekdayStart,
	})
	rec.RegularHours, _ = breakdown.Regular.Float64()
	rec.OvertimeHours, _ = breakdown.Overtime.Float64()
	rec.WeekendOTHours, _ = breakdown.WeekendOvertime.Float64()

	rec.StatHolidayHours = 0
	entry, err := a.HolidayRepository.GetByDate(ctx, rec.CompanyID, rec.Date)
	if err != nil {
		return fmt.Errorf("failed to look up holiday: %w", err)
	}
	if entry != nil && entry.Active && (!entry.UnionOnly || isUnion) {
		outcome, err := a.entitlement.Compute(ctx, rec.EmployeeID, rec.Date, rec.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to compute holiday entitlement: %w", err)
		}
		rec.StatHolidayHours, _ = outcome.Hours.Float64()
	}
	return nil
}

// Create implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	rec := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		CheckIn:    punchAt(date, req.CheckIn),
		CheckOut:   punchAt(date, req.CheckOut),
		Remarks:    req.Remarks,
	}
	if err := a.derive(ctx, &rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// Update implements attendance.AttendanceService. Omitted punch fields keep
// their stored value; an empty string clears the punch.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckIn != nil {
		rec.CheckIn = punchAt(rec.Date, req.CheckIn)
	}
	if req.CheckOut != nil {
		rec.CheckOut = punchAt(rec.Date, req.CheckOut)
	}
	if req.Remarks != nil {
		rec.Remarks = req.Remarks
	}
	if req.EditReason != nil {
		rec.EditReason = req.EditReason
	}

	if err := a.derive(ctx, &rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// SetOverride implements attendance.AttendanceService. Raw and computed
// values are left untouched; only the override layer changes.
func (a *AttendanceServiceImpl) SetOverride(ctx context.Context, req attendance.OverrideAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec.IsManualOverride = true
	if req.OverrideCheckIn != nil {
		rec.OverrideCheckIn = punchAt(rec.Date, req.OverrideCheckIn)
	}
	if req.OverrideCheckOut != nil {
		rec.OverrideCheckOut = punchAt(rec.Date, req.OverrideCheckOut)
	}
	if req.OverrideRegularHours != nil {
		rec.OverrideRegularHours = req.OverrideRegularHours
	}
	if req.OverrideOvertimeHours != nil {
		rec.OverrideOvertimeHours = req.OverrideOvertimeHours
	}
	if req.OverrideWeekendOTHours != nil {
		rec.OverrideWeekendOTHours = req.OverrideWeekendOTHours
	}
	if req.OverrideStatHolidayHours != nil {
		rec.OverrideStatHolidayHours = req.OverrideStatHolidayHours
	}
	if req.EditReason != nil {
		rec.EditReason = req.EditReason
	}

	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// ClearOverride implements attendance.AttendanceService. Stored override
// values are retained for audit; they simply stop taking effect.
func (a *AttendanceServiceImpl) ClearOverride(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec.IsManualOverride = false
	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// Recalculate implements attendance.AttendanceService. Each record is
// re-derived in its own transaction so one bad record cannot roll back the
// rest of the batch.
func (a *AttendanceServiceImpl) Recalculate(ctx context.Context, req attendance.RecalculateRequest) (attendance.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkResult{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.BulkResult{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	records, err := a.AttendanceRepository.ListRange(ctx, req.EmployeeID, start, end, companyID)
	if err != nil {
		return attendance.BulkResult{}, fmt.Errorf("failed to list attendance range: %w", err)
	}

	result := attendance.BulkResult{}
	for _, rec := range records {
		result.Processed++

		if rec.IsManualOverride {
			// Manual overrides are authoritative; recomputation would be
			// discarded by the resolver anyway.
			result.Skipped++
			continue
		}

		rec := rec
		err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)
			if err := a.derive(txCtx, &rec); err != nil {
				return err
			}
			return a.AttendanceRepository.Update(txCtx, rec)
		})
		if err != nil {
			result.AddError(fmt.Sprintf("%s %s: %v", rec.EmployeeID, rec.Date.Format("2006-01-02"), err))
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	rec, err := a.AttendanceRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return err
	}
	return a.AttendanceRepository.Delete(ctx, id, companyID)
}

// DeleteRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRange(ctx context.Context, req attendance.DeleteRangeRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return 0, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	return a.AttendanceRepository.DeleteRange(ctx, req.EmployeeID, start, end, companyID)
}
