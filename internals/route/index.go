// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	dayinfoRoutes "schoolcal_backend/internals/features/calendar/dayinfo/route"
	eventRoutes "schoolcal_backend/internals/features/calendar/events/route"
	materialRoutes "schoolcal_backend/internals/features/calendar/materials/route"
	settingsRoutes "schoolcal_backend/internals/features/calendar/settings/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *database.Handle) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoutes.EventRoutes(api, db)

	log.Println("[INFO] Setting up MaterialRoutes...")
	materialRoutes.MaterialRoutes(api, db)

	log.Println("[INFO] Setting up DayInfoRoutes...")
	dayinfoRoutes.DayInfoRoutes(api, db)

	log.Println("[INFO] Setting up SchoolSettingsRoutes...")
	settingsRoutes.SchoolSettingsRoutes(api, db)
}
