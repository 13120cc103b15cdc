package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"bms-api/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Quote limits. The banking core applies its own underwriting rules;
// these only keep the calculator inside a sane numeric range.
const (
	MaxQuotePrincipal = 1_000_000_000.0
	MaxQuoteRate      = 100.0 // percent per annum
	MaxQuoteTenure    = 600   // months
)

// QuoteCache caches EMI quotes keyed by their input. Implementations
// must be best-effort: a miss or a failed write never fails a quote.
type QuoteCache interface {
	Get(ctx context.Context, key string) (*domain.LoanQuoteResult, bool)
	Set(ctx context.Context, key string, result *domain.LoanQuoteResult)
}

// EMIService computes equated monthly installment quotes. The
// calculation itself is pure and safe for concurrent use; the optional
// cache only short-circuits repeated identical requests.
type EMIService struct {
	cache QuoteCache
}

// NewEMIService creates a new EMI service. cache may be nil.
func NewEMIService(cache QuoteCache) *EMIService {
	return &EMIService{cache: cache}
}

// Quote validates the request and returns the EMI quote.
// All validation failures wrap domain.ErrInvalidParameter.
func (s *EMIService) Quote(ctx context.Context, req domain.LoanQuoteRequest) (*domain.LoanQuoteResult, error) {
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}

	key := quoteCacheKey(req)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	result, err := computeEMI(req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, result)
	}

	return result, nil
}

func validateQuoteRequest(req domain.LoanQuoteRequest) error {
	if req.Principal <= 0 {
		return fmt.Errorf("%w: principal must be greater than 0", domain.ErrInvalidParameter)
	}
	if req.Principal > MaxQuotePrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of %.0f", domain.ErrInvalidParameter, MaxQuotePrincipal)
	}
	if req.AnnualRatePercent <= 0 {
		return fmt.Errorf("%w: rate must be greater than 0", domain.ErrInvalidParameter)
	}
	if req.AnnualRatePercent > MaxQuoteRate {
		return fmt.Errorf("%w: rate exceeds the maximum of %.0f%%", domain.ErrInvalidParameter, MaxQuoteRate)
	}
	if req.TenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be greater than 0", domain.ErrInvalidParameter)
	}
	if req.TenureMonths > MaxQuoteTenure {
		return fmt.Errorf("%w: tenure exceeds the maximum of %d months", domain.ErrInvalidParameter, MaxQuoteTenure)
	}
	return nil
}

// computeEMI applies the standard amortization formula:
//
//	r   = annualRatePercent / (12 * 100)
//	f   = (1 + r)^n
//	emi = P * r * f / (f - 1)
//
// The power term uses float64; the three monetary results are rounded
// to 2 decimal places independently with half-up (away-from-zero)
// rounding via shopspring/decimal.
func computeEMI(req domain.LoanQuoteRequest) (*domain.LoanQuoteResult, error) {
	monthlyRate := req.AnnualRatePercent / (12 * 100)
	factor := math.Pow(1+monthlyRate, float64(req.TenureMonths))

	// A rate small enough to underflow the factor to 1 would divide
	// by zero below. Report it as a validation failure, not an
	// arithmetic fault.
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor-1 == 0 {
		return nil, fmt.Errorf("%w: rate is too small for the requested tenure", domain.ErrInvalidParameter)
	}

	emi := req.Principal * monthlyRate * factor / (factor - 1)
	totalAmount := emi * float64(req.TenureMonths)
	totalInterest := totalAmount - req.Principal

	return &domain.LoanQuoteResult{
		EMI:           round2(emi),
		TotalAmount:   round2(totalAmount),
		TotalInterest: round2(totalInterest),
	}, nil
}

// round2 rounds to 2 decimal places, half away from zero
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// quoteCacheKey derives a deterministic cache key from the request
func quoteCacheKey(req domain.LoanQuoteRequest) string {
	return "emi:" +
		strconv.FormatFloat(req.Principal, 'f', -1, 64) + ":" +
		strconv.FormatFloat(req.AnnualRatePercent, 'f', -1, 64) + ":" +
		strconv.Itoa(req.TenureMonths)
}
