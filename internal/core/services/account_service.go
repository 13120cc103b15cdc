package services

import (
	"context"
	"errors"
	"fmt"

	"bms-api/internal/adapters/persistence/models"
	"bms-api/internal/adapters/persistence/repositories"
	"bms-api/internal/pkg/pagination"
)

var (
	ErrCustomerRequired      = errors.New("customer is required")
	ErrAccountRequired       = errors.New("account is required")
	ErrAccountTypeRequired   = errors.New("account type is required")
	ErrInvalidInitialDeposit = errors.New("initial deposit cannot be negative")
)

type AccountService struct {
	accounts repositories.AccountStore
}

func NewAccountService(accounts repositories.AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

type OpenAccountInput struct {
	CustomerID     uint    `json:"customer_id"`
	AccountTypeID  uint    `json:"account_type_id"`
	InitialDeposit float64 `json:"initial_deposit"`
}

// Open opens a new account for a customer and returns the generated
// account id. The banking core assigns the account number.
func (s *AccountService) Open(ctx context.Context, input OpenAccountInput) (uint, error) {
	if input.CustomerID == 0 {
		return 0, ErrCustomerRequired
	}
	if input.AccountTypeID == 0 {
		return 0, ErrAccountTypeRequired
	}
	if input.InitialDeposit < 0 {
		return 0, ErrInvalidInitialDeposit
	}

	id, err := s.accounts.Open(ctx, input.CustomerID, input.AccountTypeID, input.InitialDeposit)
	if err != nil {
		return 0, fmt.Errorf("failed to open account: %w", err)
	}

	return id, nil
}

func (s *AccountService) List(ctx context.Context, params *pagination.Params) (*pagination.Response, error) {
	accounts, total, err := s.accounts.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return pagination.NewResponse(accounts, params, total), nil
}

func (s *AccountService) Types(ctx context.Context) ([]*models.AccountType, error) {
	types, err := s.accounts.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	return types, nil
}

// ListActive returns id and display label pairs for active accounts,
// used to populate selection lists for transfers and deposits.
func (s *AccountService) ListActive(ctx context.Context) ([]*models.AccountRef, error) {
	refs, err := s.accounts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	return refs, nil
}

// Balance returns the current balance as computed by the banking core.
func (s *AccountService) Balance(ctx context.Context, accountID uint) (float64, error) {
	if accountID == 0 {
		return 0, ErrAccountRequired
	}
	balance, err := s.accounts.Balance(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}
