package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bms-api/internal/adapters/persistence/models"
	"bms-api/internal/adapters/persistence/repositories"
)

var (
	ErrCustomerNameRequired  = errors.New("first name and last name are required")
	ErrCustomerEmailRequired = errors.New("email is required")
	ErrInvalidDateOfBirth    = errors.New("date of birth must be in YYYY-MM-DD format")
)

type CustomerService struct {
	customers repositories.CustomerStore
}

func NewCustomerService(customers repositories.CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

type CreateCustomerInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

// Create registers a new customer through the banking core and
// returns the generated customer id.
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (uint, error) {
	if input.FirstName == "" || input.LastName == "" {
		return 0, ErrCustomerNameRequired
	}
	if input.Email == "" {
		return 0, ErrCustomerEmailRequired
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return 0, ErrInvalidDateOfBirth
	}

	id, err := s.customers.Add(ctx, input.FirstName, input.LastName, input.Email, input.Phone, input.Address, dob)
	if err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	return id, nil
}

func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// ListActive returns id and display name pairs for active customers,
// used to populate selection lists on the client.
func (s *CustomerService) ListActive(ctx context.Context) ([]*models.CustomerRef, error) {
	refs, err := s.customers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active customers: %w", err)
	}
	return refs, nil
}
