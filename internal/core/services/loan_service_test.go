package services

import (
	"context"
	"errors"
	"testing"

	"bms-api/internal/adapters/persistence/models"
)

type fakeLoanStore struct {
	applied      int
	lastLoanType string
}

func (f *fakeLoanStore) List(_ context.Context, _, _ int) ([]*models.LoanSummary, int64, error) {
	return []*models.LoanSummary{}, 0, nil
}

func (f *fakeLoanStore) Apply(_ context.Context, _ uint, loanType string, _, _ float64, _ int) (uint, error) {
	f.applied++
	f.lastLoanType = loanType
	return uint(f.applied), nil
}

func TestLoanApplyValidation(t *testing.T) {
	valid := LoanApplicationInput{
		CustomerID:        1,
		LoanType:          "personal",
		Principal:         50000,
		AnnualRatePercent: 12.5,
		TenureMonths:      24,
	}

	tests := []struct {
		name    string
		mutate  func(*LoanApplicationInput)
		wantErr error
	}{
		{"missing customer", func(in *LoanApplicationInput) { in.CustomerID = 0 }, ErrCustomerRequired},
		{"blank loan type", func(in *LoanApplicationInput) { in.LoanType = "   " }, ErrLoanTypeRequired},
		{"zero principal", func(in *LoanApplicationInput) { in.Principal = 0 }, ErrInvalidAmount},
		{"zero rate", func(in *LoanApplicationInput) { in.AnnualRatePercent = 0 }, ErrInvalidAmount},
		{"zero tenure", func(in *LoanApplicationInput) { in.TenureMonths = 0 }, ErrInvalidAmount},
		{"tenure over cap", func(in *LoanApplicationInput) { in.TenureMonths = MaxQuoteTenure + 1 }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeLoanStore{}
			svc := NewLoanService(store)

			input := valid
			tt.mutate(&input)

			_, err := svc.Apply(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if store.applied != 0 {
				t.Errorf("store.applied = %d, want 0", store.applied)
			}
		})
	}
}

func TestLoanApplyNormalizesLoanType(t *testing.T) {
	store := &fakeLoanStore{}
	svc := NewLoanService(store)

	id, err := svc.Apply(context.Background(), LoanApplicationInput{
		CustomerID:        1,
		LoanType:          "  home ",
		Principal:         500000,
		AnnualRatePercent: 8.5,
		TenureMonths:      240,
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if id == 0 {
		t.Error("Apply() returned id 0")
	}
	if store.lastLoanType != "HOME" {
		t.Errorf("loan type recorded as %q, want %q", store.lastLoanType, "HOME")
	}
}
