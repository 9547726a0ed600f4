package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"schoolcal_backend/internals/configs"
	database "schoolcal_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, db *database.Handle) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("schoolcal backend up")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := db.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    configs.AppEnv,
		})
	})
}
