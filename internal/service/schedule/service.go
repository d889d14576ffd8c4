package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/database"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
	"github.com/pacificpay/pacificpay-backend-go/internal/repository/postgresql"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.WorkScheduleRepository
	schedule.ScheduleAssignmentRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.WorkScheduleRepository,
	assignmentRepo schedule.ScheduleAssignmentRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                           db,
		WorkScheduleRepository:       scheduleRepo,
		ScheduleAssignmentRepository: assignmentRepo,
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

func timeOfDayPtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, ok := validator.IsValidTimeOfDay(*s)
	if !ok {
		return nil
	}
	return &t
}

// CreateSchedule implements schedule.ScheduleService. Schedules are
// immutable versions; there is deliberately no update operation.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	sched := schedule.WorkSchedule{
		CompanyID: companyID,
		Name:      req.Name,
	}
	for _, d := range req.Days {
		sched.Days = append(sched.Days, schedule.WorkScheduleDay{
			Weekday:   time.Weekday(d.Weekday),
			StartTime: timeOfDayPtr(d.StartTime),
			EndTime:   timeOfDayPtr(d.EndTime),
		})
	}

	created, err := s.WorkScheduleRepository.Create(ctx, sched)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}
	return schedule.ToScheduleResponse(created), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	sched, err := s.WorkScheduleRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return schedule.ToScheduleResponse(sched), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.WorkScheduleResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := s.WorkScheduleRepository.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, schedule.ToScheduleResponse(sched))
	}
	return responses, nil
}

// AssignSchedule implements schedule.ScheduleService. An open-ended prior
// assignment is closed the day before the new one takes effect, in the same
// transaction as the insert.
func (s *ScheduleServiceImpl) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	// Assignments reference the company's schedules only.
	if _, err := s.WorkScheduleRepository.GetByID(ctx, req.WorkScheduleID, companyID); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	effective, _ := validator.IsValidDate(req.EffectiveDate)
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := validator.IsValidDate(*req.EndDate)
		endDate = &end
	}

	var created schedule.EmployeeScheduleAssignment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		open, err := s.ScheduleAssignmentRepository.GetOpenEnded(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check open assignment: %w", err)
		}
		if open != nil {
			if !effective.After(open.EffectiveDate) {
				return schedule.ErrAssignmentOverlap
			}
			closeAt := effective.AddDate(0, 0, -1)
			if err := s.ScheduleAssignmentRepository.CloseAssignment(txCtx, open.ID, closeAt); err != nil {
				return fmt.Errorf("failed to close prior assignment: %w", err)
			}
		}

		created, err = s.ScheduleAssignmentRepository.Create(txCtx, schedule.EmployeeScheduleAssignment{
			EmployeeID:     req.EmployeeID,
			WorkScheduleID: req.WorkScheduleID,
			EffectiveDate:  effective,
			EndDate:        endDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}
	return schedule.ToAssignmentResponse(created), nil
}

// ListAssignments implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]schedule.AssignmentResponse, error) {
	if _, err := companyIDFromClaims(ctx); err != nil {
		return nil, err
	}
	assignments, err := s.ScheduleAssignmentRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, schedule.ToAssignmentResponse(a))
	}
	return responses, nil
}
