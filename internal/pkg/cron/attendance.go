package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
	"github.com/pacificpay/pacificpay-backend-go/internal/repository/postgresql"
	payrollsvc "github.com/pacificpay/pacificpay-backend-go/internal/service/payroll"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	scheduleRepo   schedule.WorkScheduleRepository
	holidayRepo    holiday.HolidayRepository
	companyRepo    company.CompanyRepository
	entitlement    *payrollsvc.EntitlementCalculator
	db             *database.DB
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	companyRepo company.CompanyRepository,
	entitlement *payrollsvc.EntitlementCalculator,
	db *database.DB,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		companyRepo:    companyRepo,
		entitlement:    entitlement,
		db:             db,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_fill_missing_attendances", 1*time.Hour, j.AutoFillMissingAttendances)
	scheduler.AddJob("recompute_stat_holiday_hours", 1*time.Hour, j.RecomputeStatHolidayHours)
}

// AutoFillMissingAttendances inserts an empty record for every scheduled
// employee who has no record for yesterday. Empty records make missed
// punches visible in reports instead of silently absent.
func (j *AttendanceJobs) AutoFillMissingAttendances(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-fill missing attendances job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	companyIDs, err := j.companyRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	filled := 0
	for _, companyID := range companyIDs {
		employeeIDs, err := j.employeeRepo.ListActiveByCompany(ctx, companyID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to list active employees", "company_id", companyID, "error", err)
			continue
		}

		for _, employeeID := range employeeIDs {
			existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, yesterday, companyID)
			if err != nil {
				slog.Error("Cron: Failed to check existing attendance", "employee_id", employeeID, "error", err)
				continue
			}
			if existing != nil {
				continue
			}

			sched, err := j.scheduleRepo.GetForEmployeeDate(ctx, employeeID, yesterday, companyID)
			if err != nil {
				// Unassigned employees are skipped, any other failure is logged.
				if !errors.Is(err, schedule.ErrWorkScheduleNotFound) {
					slog.Error("Cron: Failed to resolve schedule", "employee_id", employeeID, "error", err)
				}
				continue
			}
			if start, _ := sched.DayTimes(yesterday.Weekday()); start == nil {
				// Non-working day, nothing to fill.
				continue
			}

			remarks := "auto-generated: no punches recorded"
			_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID: employeeID,
				CompanyID:  companyID,
				Date:       yesterday,
				Remarks:    &remarks,
			})
			if err != nil && !errors.Is(err, attendance.ErrAttendanceExists) {
				slog.Error("Cron: Failed to create attendance", "employee_id", employeeID, "error", err)
				continue
			}
			filled++
		}
	}

	slog.Info("Cron: Auto-fill finished", "filled", filled)
	return nil
}

// RecomputeStatHolidayHours refreshes stat_holiday_hours for yesterday's
// records when yesterday was an active holiday. The entitlement window only
// closes once the day is over, so the nightly pass produces the final value.
func (j *AttendanceJobs) RecomputeStatHolidayHours(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	companyIDs, err := j.companyRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	updated := 0
	for _, companyID := range companyIDs {
		entry, err := j.holidayRepo.GetByDate(ctx, companyID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to look up holiday", "company_id", companyID, "error", err)
			continue
		}
		if entry == nil || !entry.Active {
			continue
		}

		slog.Info("Cron: Recomputing stat holiday hours", "company_id", companyID, "holiday", entry.Name)

		records, err := j.attendanceRepo.ListRange(ctx, nil, yesterday, yesterday, companyID)
		if err != nil {
			slog.Error("Cron: Failed to list holiday attendance", "company_id", companyID, "error", err)
			continue
		}

		for _, rec := range records {
			if rec.IsManualOverride {
				continue
			}

			rec := rec
			err := postgresql.WithTransaction(ctx, j.db, func(tx pgx.Tx) error {
				txCtx := context.WithValue(ctx, "tx", tx)

				outcome, err := j.entitlement.Compute(txCtx, rec.EmployeeID, rec.Date, companyID)
				if err != nil {
					return err
				}
				rec.StatHolidayHours, _ = outcome.Hours.Float64()
				return j.attendanceRepo.Update(txCtx, rec)
			})
			if err != nil {
				slog.Error("Cron: Failed to recompute stat holiday hours",
					"employee_id", rec.EmployeeID, "date", rec.Date.Format("2006-01-02"), "error", err)
				continue
			}
			updated++
		}
	}

	if updated > 0 {
		slog.Info("Cron: Stat holiday recompute finished", "updated", updated)
	}
	return nil
}
