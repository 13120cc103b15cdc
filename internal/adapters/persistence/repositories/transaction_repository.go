package repositories

import (
	"context"

	"bms-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionStore
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionStore {
	return &transactionRepository{db: db}
}

// Recent lists the most recent transactions with their account numbers
func (r *transactionRepository) Recent(ctx context.Context, limit int) ([]*models.TransactionRecord, error) {
	var transactions []*models.TransactionRecord
	err := r.db.WithContext(ctx).
		Table("TRANSACTION_HISTORY th").
		Select(`
			th.transaction_id,
			th.account_id,
			a.account_number,
			th.transaction_type,
			th.amount,
			th.balance_after,
			th.description,
			th.transaction_date
		`).
		Joins("JOIN ACCOUNTS a ON th.account_id = a.account_id").
		Order("th.transaction_date DESC").
		Limit(limit).
		Scan(&transactions).Error
	return transactions, err
}

// Deposit credits an account via the account_deposit stored routine
func (r *transactionRepository) Deposit(ctx context.Context, accountID uint, amount float64, description string) error {
	return r.db.WithContext(ctx).
		Exec("CALL account_deposit(?, ?, ?)", accountID, amount, description).Error
}

// Withdraw debits an account via the account_withdraw stored routine.
// Balance sufficiency is enforced by the routine, not here.
func (r *transactionRepository) Withdraw(ctx context.Context, accountID uint, amount float64, description string) error {
	return r.db.WithContext(ctx).
		Exec("CALL account_withdraw(?, ?, ?)", accountID, amount, description).Error
}

// Transfer moves funds between accounts via the account_transfer stored
// routine, which performs both legs in one database transaction.
func (r *transactionRepository) Transfer(ctx context.Context, fromAccountID, toAccountID uint, amount float64, description string) error {
	return r.db.WithContext(ctx).
		Exec("CALL account_transfer(?, ?, ?, ?)", fromAccountID, toAccountID, amount, description).Error
}
