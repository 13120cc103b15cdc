package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bms-api/internal/adapters/persistence/models"
	"bms-api/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("amount must be greater than 0")
	ErrAmountTooLarge = errors.New("amount exceeds the per-transaction limit")
	ErrSameAccount    = errors.New("source and destination accounts must differ")
)

type TransactionService struct {
	transactions repositories.TransactionStore
	maxAmount    float64
	itemsPerPage int
}

// NewTransactionService creates the money movement service. maxAmount
// caps any single deposit, withdrawal or transfer leg; itemsPerPage is
// the default size of recent transaction listings.
func NewTransactionService(transactions repositories.TransactionStore, maxAmount float64, itemsPerPage int) *TransactionService {
	if itemsPerPage < 1 {
		itemsPerPage = 20
	}
	return &TransactionService{
		transactions: transactions,
		maxAmount:    maxAmount,
		itemsPerPage: itemsPerPage,
	}
}

type MoneyMovementInput struct {
	AccountID   uint    `json:"account_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type TransferInput struct {
	FromAccountID uint    `json:"from_account_id"`
	ToAccountID   uint    `json:"to_account_id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
}

func (s *TransactionService) validateAmount(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if s.maxAmount > 0 && amount > s.maxAmount {
		return ErrAmountTooLarge
	}
	return nil
}

// reference mints a unique transaction reference and folds it into the
// description recorded by the banking core.
func reference(description string) (string, string) {
	ref := "TXN-" + uuid.New().String()
	desc := strings.TrimSpace(description)
	if desc == "" {
		desc = ref
	} else {
		desc = desc + " [" + ref + "]"
	}
	return ref, desc
}

// Deposit credits an account and returns the transaction reference.
func (s *TransactionService) Deposit(ctx context.Context, input MoneyMovementInput) (string, error) {
	if input.AccountID == 0 {
		return "", ErrAccountRequired
	}
	if err := s.validateAmount(input.Amount); err != nil {
		return "", err
	}

	ref, desc := reference(input.Description)
	if err := s.transactions.Deposit(ctx, input.AccountID, input.Amount, desc); err != nil {
		return "", fmt.Errorf("deposit failed: %w", err)
	}
	return ref, nil
}

// Withdraw debits an account and returns the transaction reference.
// Insufficient funds are rejected by the banking core.
func (s *TransactionService) Withdraw(ctx context.Context, input MoneyMovementInput) (string, error) {
	if input.AccountID == 0 {
		return "", ErrAccountRequired
	}
	if err := s.validateAmount(input.Amount); err != nil {
		return "", err
	}

	ref, desc := reference(input.Description)
	if err := s.transactions.Withdraw(ctx, input.AccountID, input.Amount, desc); err != nil {
		return "", fmt.Errorf("withdrawal failed: %w", err)
	}
	return ref, nil
}

// Transfer moves money between two accounts atomically and returns
// the transaction reference shared by both legs.
func (s *TransactionService) Transfer(ctx context.Context, input TransferInput) (string, error) {
	if input.FromAccountID == 0 || input.ToAccountID == 0 {
		return "", ErrAccountRequired
	}
	if input.FromAccountID == input.ToAccountID {
		return "", ErrSameAccount
	}
	if err := s.validateAmount(input.Amount); err != nil {
		return "", err
	}

	ref, desc := reference(input.Description)
	if err := s.transactions.Transfer(ctx, input.FromAccountID, input.ToAccountID, input.Amount, desc); err != nil {
		return "", fmt.Errorf("transfer failed: %w", err)
	}
	return ref, nil
}

// Recent returns the latest transactions across all accounts.
func (s *TransactionService) Recent(ctx context.Context, limit int) ([]*models.TransactionRecord, error) {
	if limit < 1 || limit > 100 {
		limit = s.itemsPerPage
	}
	records, err := s.transactions.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return records, nil
}
