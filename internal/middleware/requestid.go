package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID, taken from the incoming X-Request-ID header
// when a proxy already set one. The id is echoed in the response header and stored in
// c.Locals("requestid") for the access log.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}

// AccessLog prints one line per request: time, request id, status, latency, method, path.
// It must be registered after RequestID.
func AccessLog() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
	})
}
