package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CORS([]string{"http://planner.local"}))
	app.Post("/bigraph", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/bigraph", nil)
	req.Header.Set("Origin", "http://planner.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://planner.local" {
		t.Errorf("expected origin to be allowed, got %q", got)
	}
}

func TestCORS_OtherOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CORS([]string{"http://planner.local"}))
	app.Post("/bigraph", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/bigraph", nil)
	req.Header.Set("Origin", "http://elsewhere.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow-origin %q", got)
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(Logger())
	app.Get("/health/live", func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
