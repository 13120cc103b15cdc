package repositories

import (
	"context"
	"time"

	"bms-api/internal/adapters/persistence/models"
)

// CustomerStore defines customer data access
type CustomerStore interface {
	List(ctx context.Context) ([]*models.Customer, error)
	ListActive(ctx context.Context) ([]*models.CustomerRef, error)
	Add(ctx context.Context, firstName, lastName, email, phone, address string, dateOfBirth time.Time) (uint, error)
}

// AccountStore defines account data access
type AccountStore interface {
	List(ctx context.Context, offset, limit int) ([]*models.AccountSummary, int64, error)
	ListTypes(ctx context.Context) ([]*models.AccountType, error)
	ListActive(ctx context.Context) ([]*models.AccountRef, error)
	Open(ctx context.Context, customerID, accountTypeID uint, initialDeposit float64) (uint, error)
	Balance(ctx context.Context, accountID uint) (float64, error)
}

// TransactionStore defines transaction history access and money movement.
// Deposit, Withdraw and Transfer delegate to stored routines owned by the
// banking core; all balance checks happen there.
type TransactionStore interface {
	Recent(ctx context.Context, limit int) ([]*models.TransactionRecord, error)
	Deposit(ctx context.Context, accountID uint, amount float64, description string) error
	Withdraw(ctx context.Context, accountID uint, amount float64, description string) error
	Transfer(ctx context.Context, fromAccountID, toAccountID uint, amount float64, description string) error
}

// LoanStore defines loan data access
type LoanStore interface {
	List(ctx context.Context, offset, limit int) ([]*models.LoanSummary, int64, error)
	Apply(ctx context.Context, customerID uint, loanType string, principal, rate float64, tenureMonths int) (uint, error)
}
