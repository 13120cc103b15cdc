package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bms-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func newEMITestApp() *fiber.App {
	app := fiber.New()
	handler := NewLoanHandler(nil, services.NewEMIService(nil), 20)
	app.Get("/api/v1/loans/calculate-emi", handler.CalculateEMI)
	return app
}

func TestCalculateEMIEndpoint(t *testing.T) {
	app := newEMITestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/calculate-emi?principal=50000&rate=12.5&tenure=24", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		EMI           float64 `json:"emi"`
		TotalAmount   float64 `json:"total_amount"`
		TotalInterest float64 `json:"total_interest"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.EMI < 2365 || body.EMI > 2366 {
		t.Errorf("emi = %v, want about 2365.37", body.EMI)
	}
	if body.TotalAmount <= 50000 {
		t.Errorf("total_amount = %v, want more than the principal", body.TotalAmount)
	}
	diff := body.TotalAmount - 50000 - body.TotalInterest
	if diff > 0.02 || diff < -0.02 {
		t.Errorf("total_interest = %v, want total_amount minus principal", body.TotalInterest)
	}
}

func TestCalculateEMIBadInput(t *testing.T) {
	app := newEMITestApp()

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric principal", "principal=abc&rate=12.5&tenure=24"},
		{"non-numeric rate", "principal=50000&rate=xyz&tenure=24"},
		{"fractional tenure", "principal=50000&rate=12.5&tenure=2.5"},
		{"missing parameters", ""},
		{"zero principal", "principal=0&rate=12.5&tenure=24"},
		{"negative rate", "principal=50000&rate=-1&tenure=24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/calculate-emi?"+tt.query, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] == "" {
				t.Error(`body has no "error" message`)
			}
		})
	}
}

func TestCalculateEMIRepeatable(t *testing.T) {
	app := newEMITestApp()
	const target = "/api/v1/loans/calculate-emi?principal=250000&rate=9.75&tenure=120"

	read := func() []byte {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test() error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return payload
	}

	first := read()
	for i := 0; i < 3; i++ {
		if again := read(); !bytes.Equal(again, first) {
			t.Fatalf("response changed between identical requests:\n%s\n%s", first, again)
		}
	}
}
