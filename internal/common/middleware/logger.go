package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger пишет строку на запрос: статус, время, маршрут и размер тела запроса.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] [HTTP] ${status} - ${latency} ${method} ${path}?${queryParams} | ${bytesReceived}B in, ${bytesSent}B out\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
