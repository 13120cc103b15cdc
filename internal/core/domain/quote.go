package domain

// LoanQuoteRequest is the validated input of the EMI calculator.
type LoanQuoteRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// LoanQuoteResult is an EMI quote. All three figures are rounded to
// 2 decimal places independently, half-up.
type LoanQuoteResult struct {
	EMI           float64 `json:"emi"`
	TotalAmount   float64 `json:"total_amount"`
	TotalInterest float64 `json:"total_interest"`
}
