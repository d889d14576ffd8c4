package holiday

import (
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	Active    *bool  `json:"active"`
	UnionOnly bool   `json:"union_only"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	Active    *bool   `json:"active"`
	UnionOnly *bool   `json:"union_only"`
}

func (r UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	UnionOnly bool   `json:"union_only"`
}

func ToResponse(h HolidayEntry) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		Date:      h.Date.Format("2006-01-02"),
		Name:      h.Name,
		Active:    h.Active,
		UnionOnly: h.UnionOnly,
	}
}
