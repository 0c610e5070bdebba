package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestIsLoopbackHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"localhost", true},
		{"localhost:3000", true},
		{"LOCALHOST", true},
		{"app.localhost:8080", true},
		{"127.0.0.1", true},
		{"127.0.0.1:8080", true},
		{"[::1]:8080", true},
		{"::1", true},
		{"pingpongmasters.example", false},
		{"10.0.0.5:8080", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLoopbackHost(tt.host); got != tt.want {
			t.Errorf("IsLoopbackHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestDetectLocalAndRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(), DetectLocal())
	app.Get("/", func(c *fiber.Ctx) error {
		if IsLocal(c) {
			return c.SendString("local")
		}
		return c.SendString("remote")
	})

	for host, want := range map[string]string{"localhost:8080": "local", "league.example": "remote"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Host = host
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != want {
			t.Errorf("host %s: body = %q, want %q", host, body, want)
		}
		if resp.Header.Get(fiber.HeaderXRequestID) == "" {
			t.Errorf("host %s: missing request id header", host)
		}
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "upstream-id")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if got := resp.Header.Get(fiber.HeaderXRequestID); got != "upstream-id" {
		t.Errorf("request id = %q, want the upstream one", got)
	}
}

func TestIsLocalWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if IsLocal(c) {
			return c.SendString("local")
		}
		return c.SendString("remote")
	})
	req := httptest.NewRequest("GET", "/", nil)
	req.Host = "localhost"
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "remote" {
		t.Errorf("body = %q, want remote when DetectLocal did not run", body)
	}
}
