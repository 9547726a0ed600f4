// file: internals/features/calendar/settings/route/school_settings_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	setCtl "schoolcal_backend/internals/features/calendar/settings/controller"
)

func SchoolSettingsRoutes(r fiber.Router, db *database.Handle) {
	ctl := setCtl.NewSchoolSettingsController(db)
	grp := r.Group("/settings")
	grp.Get("/:school", ctl.Get)
	grp.Put("/:school", ctl.Put)
}
