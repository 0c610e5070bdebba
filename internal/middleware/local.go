// Package middleware contains HTTP middleware functions for the league site.
// This file marks requests that come from the machine the server runs on, so pages can
// show developer-only controls (the trophy rotation sliders) without any login.
package middleware

import (
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalKey is the c.Locals key holding a bool: true when the request was made to a
// loopback host name.
const LocalKey = "isLocal"

// DetectLocal stores in c.Locals(LocalKey) whether the request's Host is localhost or a
// loopback address. It never rejects a request.
//
// It only looks at the Host header the browser sent, which is what decides whether a
// visitor "is browsing on localhost". It is not an access control.
func DetectLocal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalKey, IsLoopbackHost(c.Hostname()))
		return c.Next()
	}
}

// IsLocal reads the flag set by DetectLocal; false if the middleware did not run.
func IsLocal(c *fiber.Ctx) bool {
	local, _ := c.Locals(LocalKey).(bool)
	return local
}

// IsLoopbackHost reports whether host (optionally with a port) names this machine.
func IsLoopbackHost(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(strings.ToLower(host), "[]")
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
