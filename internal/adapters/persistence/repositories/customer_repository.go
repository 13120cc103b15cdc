package repositories

import (
	"context"
	"time"

	"bms-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerStore
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerStore {
	return &customerRepository{db: db}
}

// List lists all customers, newest first
func (r *customerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	var customers []*models.Customer
	err := r.db.WithContext(ctx).
		Order("created_date DESC").
		Find(&customers).Error
	return customers, err
}

// ListActive lists active customers as id + display name (dropdown support)
func (r *customerRepository) ListActive(ctx context.Context) ([]*models.CustomerRef, error) {
	var refs []*models.CustomerRef
	err := r.db.WithContext(ctx).
		Table("CUSTOMERS").
		Select("customer_id, CONCAT(first_name, ' ', last_name) AS name").
		Where("status = ?", "ACTIVE").
		Scan(&refs).Error
	return refs, err
}

// Add creates a customer via the customer_add stored routine.
// The routine owns id generation and uniqueness checks and returns
// the new customer id as its result set.
func (r *customerRepository) Add(ctx context.Context, firstName, lastName, email, phone, address string, dateOfBirth time.Time) (uint, error) {
	var customerID uint
	err := r.db.WithContext(ctx).
		Raw("CALL customer_add(?, ?, ?, ?, ?, ?)",
			firstName, lastName, email, phone, address, dateOfBirth).
		Scan(&customerID).Error
	return customerID, err
}
