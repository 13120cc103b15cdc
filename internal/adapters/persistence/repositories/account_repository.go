package repositories

import (
	"context"
	"database/sql"

	"bms-api/internal/adapters/persistence/models"
	"bms-api/internal/core/domain"

	"gorm.io/gorm"
)

// accountRepository implements AccountStore
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountStore {
	return &accountRepository{db: db}
}

// List lists accounts with customer and type information, newest first
func (r *accountRepository) List(ctx context.Context, offset, limit int) ([]*models.AccountSummary, int64, error) {
	var accounts []*models.AccountSummary
	var total int64

	if err := r.db.WithContext(ctx).Table("ACCOUNTS").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Table("ACCOUNTS a").
		Select(`
			a.account_id,
			a.account_number,
			CONCAT(c.first_name, ' ', c.last_name) AS customer_name,
			at.type_name,
			a.balance,
			a.opened_date,
			a.status
		`).
		Joins("JOIN CUSTOMERS c ON a.customer_id = c.customer_id").
		Joins("JOIN ACCOUNT_TYPES at ON a.account_type_id = at.type_id").
		Order("a.opened_date DESC").
		Offset(offset).
		Limit(limit).
		Scan(&accounts).Error

	return accounts, total, err
}

// ListTypes lists all account types
func (r *accountRepository) ListTypes(ctx context.Context) ([]*models.AccountType, error) {
	var types []*models.AccountType
	err := r.db.WithContext(ctx).Find(&types).Error
	return types, err
}

// ListActive lists active accounts as id + display name (dropdown support)
func (r *accountRepository) ListActive(ctx context.Context) ([]*models.AccountRef, error) {
	var refs []*models.AccountRef
	err := r.db.WithContext(ctx).
		Table("ACCOUNTS a").
		Select("a.account_id, CONCAT(a.account_number, ' (', c.first_name, ' ', c.last_name, ')') AS display_name").
		Joins("JOIN CUSTOMERS c ON a.customer_id = c.customer_id").
		Where("a.status = ?", "ACTIVE").
		Order("a.account_number").
		Scan(&refs).Error
	return refs, err
}

// Open opens an account via the account_open stored routine.
// The routine validates the minimum balance against the account type
// and returns the new account id as its result set.
func (r *accountRepository) Open(ctx context.Context, customerID, accountTypeID uint, initialDeposit float64) (uint, error) {
	var accountID uint
	err := r.db.WithContext(ctx).
		Raw("CALL account_open(?, ?, ?)", customerID, accountTypeID, initialDeposit).
		Scan(&accountID).Error
	return accountID, err
}

// Balance returns the current balance via the get_account_balance
// function. The function returns NULL for an unknown account id.
func (r *accountRepository) Balance(ctx context.Context, accountID uint) (float64, error) {
	var balance sql.NullFloat64
	err := r.db.WithContext(ctx).
		Raw("SELECT get_account_balance(?)", accountID).
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	if !balance.Valid {
		return 0, domain.ErrAccountNotFound
	}
	return balance.Float64, nil
}
