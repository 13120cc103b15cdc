package handlers

import (
	"errors"

	"bms-api/internal/core/services"
	"bms-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomerRequest represents create customer request
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
}

// Create registers a new customer
// @Summary Create customer
// @Description Register a new customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body CreateCustomerRequest true "Customer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := services.CreateCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	}

	id, err := h.customerService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNameRequired):
			return response.BadRequest(c, "First name and last name are required")
		case errors.Is(err, services.ErrCustomerEmailRequired):
			return response.BadRequest(c, "Email is required")
		case errors.Is(err, services.ErrInvalidDateOfBirth):
			return response.BadRequest(c, "Date of birth must be in YYYY-MM-DD format")
		default:
			return response.InternalServerError(c, "Failed to create customer")
		}
	}

	return response.Created(c, "Customer created successfully", fiber.Map{
		"customer_id": id,
	})
}

// List lists customers
// @Summary List customers
// @Description List all customers
// @Tags Customers
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list customers")
	}

	return response.Success(c, "Customers retrieved successfully", fiber.Map{
		"customers": customers,
	})
}

// ListActive lists active customers for selection lists
// @Summary List active customers
// @Description List active customers as id and name pairs
// @Tags Customers
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /customers/active [get]
func (h *CustomerHandler) ListActive(c *fiber.Ctx) error {
	customers, err := h.customerService.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list active customers")
	}

	return response.Success(c, "Active customers retrieved successfully", fiber.Map{
		"customers": customers,
	})
}
