package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bms-api/internal/adapters/persistence/repositories"
	"bms-api/internal/pkg/pagination"
)

var ErrLoanTypeRequired = errors.New("loan type is required")

type LoanService struct {
	loans repositories.LoanStore
}

func NewLoanService(loans repositories.LoanStore) *LoanService {
	return &LoanService{loans: loans}
}

type LoanApplicationInput struct {
	CustomerID        uint    `json:"customer_id"`
	LoanType          string  `json:"loan_type"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// Apply files a loan application with the banking core and returns the
// generated loan id. Approval and disbursement happen downstream.
func (s *LoanService) Apply(ctx context.Context, input LoanApplicationInput) (uint, error) {
	if input.CustomerID == 0 {
		return 0, ErrCustomerRequired
	}

	loanType := strings.ToUpper(strings.TrimSpace(input.LoanType))
	if loanType == "" {
		return 0, ErrLoanTypeRequired
	}

	if input.Principal <= 0 || input.Principal > MaxQuotePrincipal {
		return 0, fmt.Errorf("%w: principal must be between 0 and %.0f", ErrInvalidAmount, MaxQuotePrincipal)
	}
	if input.AnnualRatePercent <= 0 || input.AnnualRatePercent > MaxQuoteRate {
		return 0, fmt.Errorf("%w: rate must be between 0 and %.0f", ErrInvalidAmount, MaxQuoteRate)
	}
	if input.TenureMonths <= 0 || input.TenureMonths > MaxQuoteTenure {
		return 0, fmt.Errorf("%w: tenure must be between 0 and %d months", ErrInvalidAmount, MaxQuoteTenure)
	}

	id, err := s.loans.Apply(ctx, input.CustomerID, loanType, input.Principal, input.AnnualRatePercent, input.TenureMonths)
	if err != nil {
		return 0, fmt.Errorf("failed to file loan application: %w", err)
	}

	return id, nil
}

// List returns one page of loan summaries with pagination metadata.
func (s *LoanService) List(ctx context.Context, params *pagination.Params) (*pagination.Response, error) {
	loans, total, err := s.loans.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	return pagination.NewResponse(loans, params, total), nil
}
