package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/payroll"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
	"github.com/pacificpay/pacificpay-backend-go/internal/service/paycalc"
)

type PayrollServiceImpl struct {
	policy      paycalc.Policy
	companyRepo company.CompanyRepository
	entitlement *EntitlementCalculator
}

func NewPayrollService(policy paycalc.Policy, companyRepo company.CompanyRepository, entitlement *EntitlementCalculator) payroll.PayrollService {
	return &PayrollServiceImpl{
		policy:      policy,
		companyRepo: companyRepo,
		entitlement: entitlement,
	}
}

// PeriodsForYear implements payroll.PayrollService.
func (s *PayrollServiceImpl) PeriodsForYear(ctx context.Context, year int) ([]payroll.PayPeriodResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	cfg, err := s.companyRepo.GetPayrollConfig(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll config: %w", err)
	}

	periods := PeriodsForYear(cfg, year)
	responses := make([]payroll.PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.ToPeriodResponse(p))
	}
	return responses, nil
}

// StatHolidayEntitlement implements payroll.PayrollService.
func (s *PayrollServiceImpl) StatHolidayEntitlement(ctx context.Context, req payroll.EntitlementRequest) (payroll.EntitlementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EntitlementResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.EntitlementResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payroll.EntitlementResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	holidayDate, _ := validator.IsValidDate(req.HolidayDate)

	outcome, err := s.entitlement.Compute(ctx, req.EmployeeID, holidayDate, companyID)
	if err != nil {
		return payroll.EntitlementResponse{}, err
	}

	hours, _ := outcome.Hours.Float64()
	return payroll.EntitlementResponse{
		EmployeeID:   req.EmployeeID,
		HolidayDate:  req.HolidayDate,
		Hours:        hours,
		Eligible:     outcome.Eligible,
		Reason:       outcome.Reason,
		DaysEligible: outcome.DaysEligible,
		DaysWorked:   outcome.DaysWorked,
	}, nil
}
