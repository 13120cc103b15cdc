package models

import "time"

// ============================================================
// Read models over the external banking schema.
//
// The tables below are owned by the database team and written only
// by its stored routines. This service reads them and never
// migrates, creates, or alters them.
// ============================================================

// Customer represents a row of the CUSTOMERS table
type Customer struct {
	CustomerID  uint      `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	FirstName   string    `gorm:"column:first_name" json:"first_name"`
	LastName    string    `gorm:"column:last_name" json:"last_name"`
	Email       string    `gorm:"column:email" json:"email"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Address     string    `gorm:"column:address" json:"address"`
	DateOfBirth time.Time `gorm:"column:date_of_birth" json:"date_of_birth"`
	CreatedDate time.Time `gorm:"column:created_date" json:"created_date"`
	Status      string    `gorm:"column:status" json:"status"`
}

func (Customer) TableName() string {
	return "CUSTOMERS"
}

// CustomerRef is a customer reference for dropdowns (id + display name)
type CustomerRef struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
}

// AccountType represents a row of the ACCOUNT_TYPES table
type AccountType struct {
	TypeID     uint    `gorm:"column:type_id;primaryKey" json:"type_id"`
	TypeName   string  `gorm:"column:type_name" json:"type_name"`
	MinBalance float64 `gorm:"column:min_balance" json:"min_balance"`
}

func (AccountType) TableName() string {
	return "ACCOUNT_TYPES"
}

// Account represents a row of the ACCOUNTS table
type Account struct {
	AccountID     uint      `gorm:"column:account_id;primaryKey" json:"account_id"`
	AccountNumber string    `gorm:"column:account_number" json:"account_number"`
	CustomerID    uint      `gorm:"column:customer_id" json:"customer_id"`
	AccountTypeID uint      `gorm:"column:account_type_id" json:"account_type_id"`
	Balance       float64   `gorm:"column:balance" json:"balance"`
	OpenedDate    time.Time `gorm:"column:opened_date" json:"opened_date"`
	Status        string    `gorm:"column:status" json:"status"`
}

func (Account) TableName() string {
	return "ACCOUNTS"
}

// AccountSummary is the account listing row (account + customer + type join)
type AccountSummary struct {
	AccountID     uint      `json:"account_id"`
	AccountNumber string    `json:"account_number"`
	CustomerName  string    `json:"customer_name"`
	TypeName      string    `json:"type_name"`
	Balance       float64   `json:"balance"`
	OpenedDate    time.Time `json:"opened_date"`
	Status        string    `json:"status"`
}

// AccountRef is an active account reference for dropdowns
type AccountRef struct {
	AccountID   uint   `json:"account_id"`
	DisplayName string `json:"display_name"`
}

// TransactionRecord is a TRANSACTION_HISTORY row joined with its account
type TransactionRecord struct {
	TransactionID   uint      `json:"id"`
	AccountID       uint      `json:"account_id"`
	AccountNumber   string    `json:"account_number"`
	TransactionType string    `json:"type"`
	Amount          float64   `json:"amount"`
	BalanceAfter    float64   `json:"balance_after"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"date"`
}

// LoanSummary is the loan listing row (loan + customer join)
type LoanSummary struct {
	LoanID             uint      `json:"loan_id"`
	CustomerName       string    `json:"customer_name"`
	LoanType           string    `json:"loan_type"`
	PrincipalAmount    float64   `json:"principal_amount"`
	InterestRate       float64   `json:"interest_rate"`
	TenureMonths       int       `json:"tenure_months"`
	EMIAmount          float64   `json:"emi_amount"`
	OutstandingBalance float64   `json:"outstanding_balance"`
	ApplicationDate    time.Time `json:"application_date"`
	Status             string    `json:"status"`
}
