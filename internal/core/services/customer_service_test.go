package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bms-api/internal/adapters/persistence/models"
)

type fakeCustomerStore struct {
	added   int
	lastDOB time.Time
}

func (f *fakeCustomerStore) List(_ context.Context) ([]*models.Customer, error) {
	return []*models.Customer{}, nil
}

func (f *fakeCustomerStore) ListActive(_ context.Context) ([]*models.CustomerRef, error) {
	return []*models.CustomerRef{}, nil
}

func (f *fakeCustomerStore) Add(_ context.Context, _, _, _, _, _ string, dateOfBirth time.Time) (uint, error) {
	f.added++
	f.lastDOB = dateOfBirth
	return uint(f.added), nil
}

func TestCreateCustomerValidation(t *testing.T) {
	valid := CreateCustomerInput{
		FirstName:   "Asha",
		LastName:    "Verma",
		Email:       "asha@example.com",
		DateOfBirth: "1990-04-15",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateCustomerInput)
		wantErr error
	}{
		{"missing first name", func(in *CreateCustomerInput) { in.FirstName = "" }, ErrCustomerNameRequired},
		{"missing last name", func(in *CreateCustomerInput) { in.LastName = "" }, ErrCustomerNameRequired},
		{"missing email", func(in *CreateCustomerInput) { in.Email = "" }, ErrCustomerEmailRequired},
		{"empty date of birth", func(in *CreateCustomerInput) { in.DateOfBirth = "" }, ErrInvalidDateOfBirth},
		{"wrong date format", func(in *CreateCustomerInput) { in.DateOfBirth = "15/04/1990" }, ErrInvalidDateOfBirth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCustomerStore{}
			svc := NewCustomerService(store)

			input := valid
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if store.added != 0 {
				t.Errorf("store.added = %d, want 0", store.added)
			}
		})
	}
}

func TestCreateCustomerParsesDateOfBirth(t *testing.T) {
	store := &fakeCustomerStore{}
	svc := NewCustomerService(store)

	id, err := svc.Create(context.Background(), CreateCustomerInput{
		FirstName:   "Asha",
		LastName:    "Verma",
		Email:       "asha@example.com",
		DateOfBirth: "1990-04-15",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == 0 {
		t.Error("Create() returned id 0")
	}

	want := time.Date(1990, time.April, 15, 0, 0, 0, 0, time.UTC)
	if !store.lastDOB.Equal(want) {
		t.Errorf("date of birth = %v, want %v", store.lastDOB, want)
	}
}
