package handlers

import (
	"errors"
	"strconv"

	"bms-api/internal/core/domain"
	"bms-api/internal/core/services"
	"bms-api/internal/pkg/pagination"
	"bms-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService *services.AccountService
	itemsPerPage   int
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService, itemsPerPage int) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		itemsPerPage:   itemsPerPage,
	}
}

// OpenAccountRequest represents open account request
type OpenAccountRequest struct {
	CustomerID     uint    `json:"customer_id"`
	AccountTypeID  uint    `json:"account_type_id"`
	InitialDeposit float64 `json:"initial_deposit"`
}

// Open opens a new account
// @Summary Open account
// @Description Open a new account for a customer
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body OpenAccountRequest true "Account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /accounts [post]
func (h *AccountHandler) Open(c *fiber.Ctx) error {
	var req OpenAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.OpenAccountInput{
		CustomerID:     req.CustomerID,
		AccountTypeID:  req.AccountTypeID,
		InitialDeposit: req.InitialDeposit,
	}

	id, err := h.accountService.Open(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerRequired):
			return response.BadRequest(c, "Customer is required")
		case errors.Is(err, services.ErrAccountTypeRequired):
			return response.BadRequest(c, "Account type is required")
		case errors.Is(err, services.ErrInvalidInitialDeposit):
			return response.BadRequest(c, "Initial deposit cannot be negative")
		default:
			return response.InternalServerError(c, "Failed to open account")
		}
	}

	return response.Created(c, "Account opened successfully", fiber.Map{
		"account_id": id,
	})
}

// List lists accounts
// @Summary List accounts
// @Description List accounts with pagination
// @Tags Accounts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, h.itemsPerPage)

	result, err := h.accountService.List(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list accounts")
	}

	return response.Success(c, "Accounts retrieved successfully", result)
}

// Types lists account types
// @Summary List account types
// @Description List available account types
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /accounts/types [get]
func (h *AccountHandler) Types(c *fiber.Ctx) error {
	types, err := h.accountService.Types(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list account types")
	}

	return response.Success(c, "Account types retrieved successfully", fiber.Map{
		"account_types": types,
	})
}

// ListActive lists active accounts for selection lists
// @Summary List active accounts
// @Description List active accounts as id and label pairs
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /accounts/active [get]
func (h *AccountHandler) ListActive(c *fiber.Ctx) error {
	accounts, err := h.accountService.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list active accounts")
	}

	return response.Success(c, "Active accounts retrieved successfully", fiber.Map{
		"accounts": accounts,
	})
}

// Balance returns the current balance of an account
// @Summary Get account balance
// @Description Get the current balance of an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id}/balance [get]
func (h *AccountHandler) Balance(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	balance, err := h.accountService.Balance(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to fetch balance")
	}

	return response.Success(c, "Balance retrieved successfully", fiber.Map{
		"account_id": uint(id),
		"balance":    balance,
	})
}
