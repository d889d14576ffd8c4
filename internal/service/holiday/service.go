package holiday

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
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

// Create implements holiday.HolidayService.
func (h *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.HolidayRepository.Create(ctx, holiday.HolidayEntry{
		CompanyID: companyID,
		Date:      date,
		Name:      req.Name,
		Active:    active,
		UnionOnly: req.UnionOnly,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(created), nil
}

// Update implements holiday.HolidayService. The date is immutable; a moved
// holiday is a delete plus a create.
func (h *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	entry, err := h.HolidayRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Active != nil {
		entry.Active = *req.Active
	}
	if req.UnionOnly != nil {
		entry.UnionOnly = *req.UnionOnly
	}

	if err := h.HolidayRepository.Update(ctx, entry); err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(entry), nil
}

// ListYear implements holiday.HolidayService. The admin calendar shows
// union-only entries too.
func (h *HolidayServiceImpl) ListYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := h.HolidayRepository.ListYear(ctx, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, holiday.ToResponse(entry))
	}
	return responses, nil
}

// Delete implements holiday.HolidayService.
func (h *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return err
	}
	return h.HolidayRepository.Delete(ctx, id, companyID)
}
