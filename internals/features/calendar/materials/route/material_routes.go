// file: internals/features/calendar/materials/route/material_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	matCtl "schoolcal_backend/internals/features/calendar/materials/controller"
)

func MaterialRoutes(r fiber.Router, db *database.Handle) {
	ctl := matCtl.NewMaterialController(db)
	grp := r.Group("/materials")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
