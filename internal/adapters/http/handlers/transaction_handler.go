package handlers

import (
	"errors"
	"strconv"

	"bms-api/internal/core/services"
	"bms-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles money movement endpoints
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// MoneyMovementRequest represents deposit and withdrawal requests
type MoneyMovementRequest struct {
	AccountID   uint    `json:"account_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// TransferRequest represents transfer request
type TransferRequest struct {
	FromAccountID uint    `json:"from_account_id"`
	ToAccountID   uint    `json:"to_account_id"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description,omitempty"`
}

func movementError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrAccountRequired):
		return response.BadRequest(c, "Account is required")
	case errors.Is(err, services.ErrInvalidAmount):
		return response.BadRequest(c, "Amount must be greater than 0")
	case errors.Is(err, services.ErrAmountTooLarge):
		return response.BadRequest(c, "Amount exceeds the per-transaction limit")
	case errors.Is(err, services.ErrSameAccount):
		return response.BadRequest(c, "Source and destination accounts must differ")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// Deposit credits an account
// @Summary Deposit
// @Description Deposit money into an account
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body MoneyMovementRequest true "Deposit data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions/deposit [post]
func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	var req MoneyMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.MoneyMovementInput{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	ref, err := h.transactionService.Deposit(c.Context(), input)
	if err != nil {
		return movementError(c, err, "Deposit failed")
	}

	return response.Created(c, "Deposit completed successfully", fiber.Map{
		"reference": ref,
	})
}

// Withdraw debits an account
// @Summary Withdraw
// @Description Withdraw money from an account
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body MoneyMovementRequest true "Withdrawal data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	var req MoneyMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.MoneyMovementInput{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Description: req.Description,
	}

	ref, err := h.transactionService.Withdraw(c.Context(), input)
	if err != nil {
		return movementError(c, err, "Withdrawal failed")
	}

	return response.Created(c, "Withdrawal completed successfully", fiber.Map{
		"reference": ref,
	})
}

// Transfer moves money between two accounts
// @Summary Transfer
// @Description Transfer money between two accounts
// @Tags Transactions
// @Accept json
// @Produce json
// @Param body body TransferRequest true "Transfer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions/transfer [post]
func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.TransferInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
	}

	ref, err := h.transactionService.Transfer(c.Context(), input)
	if err != nil {
		return movementError(c, err, "Transfer failed")
	}

	return response.Created(c, "Transfer completed successfully", fiber.Map{
		"reference": ref,
	})
}

// Recent lists the latest transactions
// @Summary Recent transactions
// @Description List the latest transactions across all accounts
// @Tags Transactions
// @Accept json
// @Produce json
// @Param limit query int false "Number of transactions" default(20)
// @Success 200 {object} response.Response
// @Router /transactions/recent [get]
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	records, err := h.transactionService.Recent(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list recent transactions")
	}

	return response.Success(c, "Recent transactions retrieved successfully", fiber.Map{
		"transactions": records,
	})
}
