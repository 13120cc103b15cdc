package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bms-api/internal/adapters/persistence/models"
)

// fakeTransactionStore records calls instead of hitting the database.
type fakeTransactionStore struct {
	deposits    int
	withdrawals int
	transfers   int
	lastDesc    string
	err         error
}

func (f *fakeTransactionStore) Recent(_ context.Context, limit int) ([]*models.TransactionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	records := make([]*models.TransactionRecord, 0, limit)
	return records, nil
}

func (f *fakeTransactionStore) Deposit(_ context.Context, _ uint, _ float64, description string) error {
	if f.err != nil {
		return f.err
	}
	f.deposits++
	f.lastDesc = description
	return nil
}

func (f *fakeTransactionStore) Withdraw(_ context.Context, _ uint, _ float64, description string) error {
	if f.err != nil {
		return f.err
	}
	f.withdrawals++
	f.lastDesc = description
	return nil
}

func (f *fakeTransactionStore) Transfer(_ context.Context, _, _ uint, _ float64, description string) error {
	if f.err != nil {
		return f.err
	}
	f.transfers++
	f.lastDesc = description
	return nil
}

func TestDepositValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   MoneyMovementInput
		wantErr error
	}{
		{"missing account", MoneyMovementInput{AccountID: 0, Amount: 100}, ErrAccountRequired},
		{"zero amount", MoneyMovementInput{AccountID: 1, Amount: 0}, ErrInvalidAmount},
		{"negative amount", MoneyMovementInput{AccountID: 1, Amount: -50}, ErrInvalidAmount},
		{"amount over limit", MoneyMovementInput{AccountID: 1, Amount: 2_000_000}, ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeTransactionStore{}
			svc := NewTransactionService(store, 1_000_000, 20)

			_, err := svc.Deposit(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Deposit() error = %v, want %v", err, tt.wantErr)
			}
			if store.deposits != 0 {
				t.Errorf("store.deposits = %d, want 0", store.deposits)
			}
		})
	}
}

func TestWithdrawValidation(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 1_000_000, 20)

	if _, err := svc.Withdraw(context.Background(), MoneyMovementInput{AccountID: 1, Amount: -10}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Withdraw() error = %v, want ErrInvalidAmount", err)
	}
	if store.withdrawals != 0 {
		t.Errorf("store.withdrawals = %d, want 0", store.withdrawals)
	}
}

func TestTransferRejectsSameAccount(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 1_000_000, 20)

	_, err := svc.Transfer(context.Background(), TransferInput{
		FromAccountID: 7,
		ToAccountID:   7,
		Amount:        100,
	})
	if !errors.Is(err, ErrSameAccount) {
		t.Errorf("Transfer() error = %v, want ErrSameAccount", err)
	}
	if store.transfers != 0 {
		t.Errorf("store.transfers = %d, want 0", store.transfers)
	}
}

func TestDepositGeneratesReference(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 1_000_000, 20)

	ref, err := svc.Deposit(context.Background(), MoneyMovementInput{
		AccountID:   1,
		Amount:      500,
		Description: "salary",
	})
	if err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}

	if !strings.HasPrefix(ref, "TXN-") {
		t.Errorf("reference = %q, want TXN- prefix", ref)
	}
	if !strings.Contains(store.lastDesc, ref) {
		t.Errorf("recorded description %q does not carry reference %q", store.lastDesc, ref)
	}
	if !strings.Contains(store.lastDesc, "salary") {
		t.Errorf("recorded description %q lost the caller description", store.lastDesc)
	}
}

func TestDepositWithoutDescriptionUsesReference(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 1_000_000, 20)

	ref, err := svc.Deposit(context.Background(), MoneyMovementInput{AccountID: 1, Amount: 500})
	if err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if store.lastDesc != ref {
		t.Errorf("recorded description = %q, want bare reference %q", store.lastDesc, ref)
	}
}

func TestTransferReferencesAreUnique(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 1_000_000, 20)
	input := TransferInput{FromAccountID: 1, ToAccountID: 2, Amount: 100}

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		ref, err := svc.Transfer(context.Background(), input)
		if err != nil {
			t.Fatalf("Transfer() error = %v", err)
		}
		if seen[ref] {
			t.Fatalf("reference %q repeated", ref)
		}
		seen[ref] = true
	}
}

func TestNoLimitWhenMaxAmountZero(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := NewTransactionService(store, 0, 20)

	if _, err := svc.Deposit(context.Background(), MoneyMovementInput{AccountID: 1, Amount: 5_000_000}); err != nil {
		t.Errorf("Deposit() error = %v, want nil when no limit is set", err)
	}
}
