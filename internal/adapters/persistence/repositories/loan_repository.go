package repositories

import (
	"context"

	"bms-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanStore
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanStore {
	return &loanRepository{db: db}
}

// List lists loans with customer information, newest first
func (r *loanRepository) List(ctx context.Context, offset, limit int) ([]*models.LoanSummary, int64, error) {
	var loans []*models.LoanSummary
	var total int64

	if err := r.db.WithContext(ctx).Table("LOANS").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Table("LOANS l").
		Select(`
			l.loan_id,
			CONCAT(c.first_name, ' ', c.last_name) AS customer_name,
			l.loan_type,
			l.principal_amount,
			l.interest_rate,
			l.tenure_months,
			l.emi_amount,
			l.outstanding_balance,
			l.application_date,
			l.status
		`).
		Joins("JOIN CUSTOMERS c ON l.customer_id = c.customer_id").
		Order("l.application_date DESC").
		Offset(offset).
		Limit(limit).
		Scan(&loans).Error

	return loans, total, err
}

// Apply files a loan application via the loan_apply stored routine.
// EMI and repayment schedule are computed by the banking core; the
// routine returns the new loan id as its result set.
func (r *loanRepository) Apply(ctx context.Context, customerID uint, loanType string, principal, rate float64, tenureMonths int) (uint, error) {
	var loanID uint
	err := r.db.WithContext(ctx).
		Raw("CALL loan_apply(?, ?, ?, ?, ?)",
			customerID, loanType, principal, rate, tenureMonths).
		Scan(&loanID).Error
	return loanID, err
}
