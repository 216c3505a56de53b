package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

var startedAt = time.Now()

// LivenessProbe: процесс жив, плюс аптайм в секундах
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "alive",
		"uptime_seconds": int64(time.Since(startedAt).Seconds()),
	})
}

// StartupProbe отдает момент старта сервиса (UTC, RFC 3339)
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "started",
		"started_at": startedAt.UTC().Format(time.RFC3339),
	})
}
