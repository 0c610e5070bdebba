package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the app-wide fiber.Config.ErrorHandler.
// Requests under /api get {"error": message}; everything else gets the HTML error page.
// Errors that are not *fiber.Error (including recovered panics) are a 500 whose detail
// is logged but never shown to the visitor.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong on our side."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).
			Interface("requestId", c.Locals("requestid")).Msg("unhandled error")
	}

	if IsAPI(c) {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("error", page(msg, fiber.Map{"Status": code, "Message": msg})); rerr != nil {
		log.Error().Err(rerr).Msg("rendering error page")
		return c.Status(code).SendString(msg)
	}
	return nil
}

// NotFound is the catch-all registered after every route and the static files.
func NotFound(c *fiber.Ctx) error {
	if IsAPI(c) {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	}
	return fiber.NewError(fiber.StatusNotFound, "Page not found")
}

// IsAPI reports whether the request is for the JSON API.
func IsAPI(c *fiber.Ctx) bool {
	p := c.Path()
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
