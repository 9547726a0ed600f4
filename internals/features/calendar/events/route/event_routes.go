// file: internals/features/calendar/events/route/event_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	evCtl "schoolcal_backend/internals/features/calendar/events/controller"
)

func EventRoutes(r fiber.Router, db *database.Handle) {
	ctl := evCtl.NewEventController(db)
	grp := r.Group("/events")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
