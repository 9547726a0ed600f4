// file: internals/features/calendar/dayinfo/route/dayinfo_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	diCtl "schoolcal_backend/internals/features/calendar/dayinfo/controller"
)

func DayInfoRoutes(r fiber.Router, db *database.Handle) {
	ctl := diCtl.NewDayInfoController(db)

	ds := r.Group("/day-schedules")
	ds.Get("/", ctl.ListDaySchedules)
	ds.Put("/:date", ctl.PutDaySchedule)

	dt := r.Group("/day-types")
	dt.Get("/", ctl.ListDayTypes)
	dt.Put("/:date", ctl.PutDayType)

	dc := r.Group("/date-configs")
	dc.Get("/", ctl.ListDateConfigs)
	dc.Put("/:date", ctl.PutDateConfig)
}
