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

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService  *services.LoanService
	emiService   *services.EMIService
	itemsPerPage int
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService, emiService *services.EMIService, itemsPerPage int) *LoanHandler {
	return &LoanHandler{
		loanService:  loanService,
		emiService:   emiService,
		itemsPerPage: itemsPerPage,
	}
}

// LoanApplicationRequest represents loan application request
type LoanApplicationRequest struct {
	CustomerID        uint    `json:"customer_id"`
	LoanType          string  `json:"loan_type"`
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// Apply files a loan application
// @Summary Apply for a loan
// @Description File a new loan application
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body LoanApplicationRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /loans/apply [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	var req LoanApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.LoanApplicationInput{
		CustomerID:        req.CustomerID,
		LoanType:          req.LoanType,
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TenureMonths:      req.TenureMonths,
	}

	id, err := h.loanService.Apply(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerRequired):
			return response.BadRequest(c, "Customer is required")
		case errors.Is(err, services.ErrLoanTypeRequired):
			return response.BadRequest(c, "Loan type is required")
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to file loan application")
		}
	}

	return response.Created(c, "Loan application filed successfully", fiber.Map{
		"loan_id": id,
	})
}

// List lists loans
// @Summary List loans
// @Description List loans with pagination
// @Tags Loans
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c, h.itemsPerPage)

	result, err := h.loanService.List(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully", result)
}

// CalculateEMI computes an EMI quote from query parameters.
//
// Unlike the other endpoints this one does not use the response
// envelope: clients read emi, total_amount and total_interest at the
// top level, and errors as {"error": message}.
//
// @Summary Calculate EMI
// @Description Calculate the equated monthly installment for a prospective loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param principal query number true "Loan principal"
// @Param rate query number true "Annual interest rate in percent"
// @Param tenure query int true "Tenure in months"
// @Success 200 {object} domain.LoanQuoteResult
// @Failure 400 {object} map[string]string
// @Router /loans/calculate-emi [get]
func (h *LoanHandler) CalculateEMI(c *fiber.Ctx) error {
	principal, err := strconv.ParseFloat(c.Query("principal", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "principal must be a number",
		})
	}

	rate, err := strconv.ParseFloat(c.Query("rate", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rate must be a number",
		})
	}

	tenure, err := strconv.Atoi(c.Query("tenure", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tenure must be an integer",
		})
	}

	result, err := h.emiService.Quote(c.Context(), domain.LoanQuoteRequest{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenureMonths:      tenure,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to calculate EMI",
		})
	}

	return c.JSON(result)
}
