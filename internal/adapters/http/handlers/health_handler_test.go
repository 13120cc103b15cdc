package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bms-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

func TestHealthCheckUnavailableDatabase(t *testing.T) {
	app := fiber.New()
	handler := NewHealthHandler()
	app.Get("/health", handler.HealthCheck)

	// No database connection is configured in tests.
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusServiceUnavailable)
	}

	var body response.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Error == "" {
		t.Error("error message is empty")
	}
}
