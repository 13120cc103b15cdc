package services

import (
	"context"
	"errors"
	"testing"

	"bms-api/internal/adapters/persistence/models"
	"bms-api/internal/pkg/pagination"
)

// fakeAccountStore serves canned data for service tests.
type fakeAccountStore struct {
	opened    int
	balance   float64
	total     int64
	gotOffset int
	gotLimit  int
}

func (f *fakeAccountStore) List(_ context.Context, offset, limit int) ([]*models.AccountSummary, int64, error) {
	f.gotOffset = offset
	f.gotLimit = limit
	accounts := []*models.AccountSummary{}
	return accounts, f.total, nil
}

func (f *fakeAccountStore) ListTypes(_ context.Context) ([]*models.AccountType, error) {
	return []*models.AccountType{}, nil
}

func (f *fakeAccountStore) ListActive(_ context.Context) ([]*models.AccountRef, error) {
	return []*models.AccountRef{}, nil
}

func (f *fakeAccountStore) Open(_ context.Context, _, _ uint, _ float64) (uint, error) {
	f.opened++
	return uint(f.opened), nil
}

func (f *fakeAccountStore) Balance(_ context.Context, _ uint) (float64, error) {
	return f.balance, nil
}

func TestOpenAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   OpenAccountInput
		wantErr error
	}{
		{"missing customer", OpenAccountInput{AccountTypeID: 1, InitialDeposit: 100}, ErrCustomerRequired},
		{"missing account type", OpenAccountInput{CustomerID: 1, InitialDeposit: 100}, ErrAccountTypeRequired},
		{"negative deposit", OpenAccountInput{CustomerID: 1, AccountTypeID: 1, InitialDeposit: -10}, ErrInvalidInitialDeposit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAccountStore{}
			svc := NewAccountService(store)

			_, err := svc.Open(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
			if store.opened != 0 {
				t.Errorf("store.opened = %d, want 0", store.opened)
			}
		})
	}
}

func TestOpenAccountAllowsZeroDeposit(t *testing.T) {
	store := &fakeAccountStore{}
	svc := NewAccountService(store)

	id, err := svc.Open(context.Background(), OpenAccountInput{CustomerID: 1, AccountTypeID: 2})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if id == 0 {
		t.Error("Open() returned id 0")
	}
}

func TestBalancePassThrough(t *testing.T) {
	store := &fakeAccountStore{balance: 1234.56}
	svc := NewAccountService(store)

	balance, err := svc.Balance(context.Background(), 42)
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	if balance != 1234.56 {
		t.Errorf("Balance() = %v, want 1234.56", balance)
	}

	if _, err := svc.Balance(context.Background(), 0); !errors.Is(err, ErrAccountRequired) {
		t.Errorf("Balance(0) error = %v, want ErrAccountRequired", err)
	}
}

func TestListUsesParamsOffset(t *testing.T) {
	store := &fakeAccountStore{total: 45}
	svc := NewAccountService(store)

	out, err := svc.List(context.Background(), pagination.NewParams(2, 15, 20))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if store.gotOffset != 15 {
		t.Errorf("store offset = %d, want 15", store.gotOffset)
	}
	if store.gotLimit != 15 {
		t.Errorf("store limit = %d, want 15", store.gotLimit)
	}

	meta := out.Meta
	if meta.Page != 2 || meta.Limit != 15 {
		t.Errorf("meta page/limit = %d/%d, want 2/15", meta.Page, meta.Limit)
	}
	if meta.Total != 45 || meta.TotalPages != 3 {
		t.Errorf("meta total/pages = %d/%d, want 45/3", meta.Total, meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("meta has_next/has_prev = %v/%v, want true/true", meta.HasNext, meta.HasPrev)
	}
}
