package schedule

import (
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

// CreateWorkScheduleRequest creates a new schedule version. Days omitted or
// with nil times are non-working days.
type CreateWorkScheduleRequest struct {
	Name string                   `json:"name"`
	Days []WorkScheduleDayRequest `json:"days"`
}

type WorkScheduleDayRequest struct {
	Weekday   int     `json:"weekday"` // 0=Sunday ... 6=Saturday, per time.Weekday
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (r CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	seen := make(map[int]bool)
	for _, d := range r.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "weekday must be between 0 and 6"})
			continue
		}
		if seen[d.Weekday] {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "duplicate weekday entry"})
		}
		seen[d.Weekday] = true

		hasStart := d.StartTime != nil && *d.StartTime != ""
		hasEnd := d.EndTime != nil && *d.EndTime != ""
		if hasStart != hasEnd {
			errs = append(errs, validator.ValidationError{Field: "days", Message: "start_time and end_time must be set together"})
		}
		if hasStart {
			if _, ok := validator.IsValidTimeOfDay(*d.StartTime); !ok {
				errs = append(errs, validator.ValidationError{Field: "days", Message: "start_time must be in HH:MM:SS format"})
			}
		}
		if hasEnd {
			if _, ok := validator.IsValidTimeOfDay(*d.EndTime); !ok {
				errs = append(errs, validator.ValidationError{Field: "days", Message: "end_time must be in HH:MM:SS format"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AssignScheduleRequest binds an employee to a schedule from an effective
// date. An open-ended assignment already covering that date is closed the
// day before the new one starts.
type AssignScheduleRequest struct {
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	EffectiveDate  string  `json:"effective_date"`
	EndDate        *string `json:"end_date"`
}

func (r AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "work_schedule_id is required"})
	}
	start, okStart := validator.IsValidDate(r.EffectiveDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective_date must be in YYYY-MM-DD format"})
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, okEnd := validator.IsValidDate(*r.EndDate)
		if !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		} else if okStart && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkScheduleDayResponse struct {
	Weekday   int     `json:"weekday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type WorkScheduleResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Days      []WorkScheduleDayResponse `json:"days"`
	CreatedAt string                    `json:"created_at"`
}

type AssignmentResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	EffectiveDate  string  `json:"effective_date"`
	EndDate        *string `json:"end_date"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func ToScheduleResponse(s WorkSchedule) WorkScheduleResponse {
	days := make([]WorkScheduleDayResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, WorkScheduleDayResponse{
			Weekday:   int(d.Weekday),
			StartTime: formatTimePtr(d.StartTime),
			EndTime:   formatTimePtr(d.EndTime),
		})
	}
	return WorkScheduleResponse{
		ID:        s.ID,
		Name:      s.Name,
		Days:      days,
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToAssignmentResponse(a EmployeeScheduleAssignment) AssignmentResponse {
	var endDate *string
	if a.EndDate != nil {
		s := a.EndDate.Format("2006-01-02")
		endDate = &s
	}
	return AssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		WorkScheduleID: a.WorkScheduleID,
		EffectiveDate:  a.EffectiveDate.Format("2006-01-02"),
		EndDate:        endDate,
	}
}
