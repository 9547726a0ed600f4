// file: internals/features/calendar/dayinfo/controller/dayinfo_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "schoolcal_backend/internals/databases"
	dto "schoolcal_backend/internals/features/calendar/dayinfo/dto"
	"schoolcal_backend/internals/features/calendar/dayinfo/service"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
)

type DayInfoController struct {
	DB *database.Handle
}

func NewDayInfoController(db *database.Handle) *DayInfoController {
	return &DayInfoController{DB: db}
}

// getDate normalizes the :date path parameter.
func (ctl *DayInfoController) getDate(c *fiber.Ctx) (time.Time, error) {
	canonical, err := dateutil.NormalizeRequired(c.Params("date"), "date")
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.ToTime(canonical), nil
}

/*
=========================================================

	DAY SCHEDULES
	GET /api/day-schedules
	PUT /api/day-schedules/:date   (null value clears the date)
	=========================================================
*/
func (ctl *DayInfoController) ListDaySchedules(c *fiber.Ctx) error {
	rows, err := service.ListDaySchedules(ctl.DB.DB().WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDaySchedules(rows))
}

func (ctl *DayInfoController) PutDaySchedule(c *fiber.Ctx) error {
	date, err := ctl.getDate(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.PutDayScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	m, err := service.PutDaySchedule(ctl.DB.DB().WithContext(c.UserContext()), date, req.DayScheduleValue)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if m == nil {
		return helper.JsonOK(c, "Cleared", fiber.Map{
			"day_schedule_date": dateutil.Format(date),
		})
	}
	return helper.JsonOK(c, "Saved", dto.FromDaySchedule(m))
}

/*
=========================================================

	DAY TYPES
	GET /api/day-types
	PUT /api/day-types/:date   (null value clears the date)
	=========================================================
*/
func (ctl *DayInfoController) ListDayTypes(c *fiber.Ctx) error {
	rows, err := service.ListDayTypes(ctl.DB.DB().WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDayTypes(rows))
}

func (ctl *DayInfoController) PutDayType(c *fiber.Ctx) error {
	date, err := ctl.getDate(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.PutDayTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()

	m, err := service.PutDayType(ctl.DB.DB().WithContext(c.UserContext()), date, req.DayTypeValue)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if m == nil {
		return helper.JsonOK(c, "Cleared", fiber.Map{
			"day_type_date": dateutil.Format(date),
		})
	}
	return helper.JsonOK(c, "Saved", dto.FromDayType(m))
}

/*
=========================================================

	DATE CONFIGS
	GET /api/date-configs
	PUT /api/date-configs/:date   (partial write; omitted fields kept)
	=========================================================
*/
func (ctl *DayInfoController) ListDateConfigs(c *fiber.Ctx) error {
	rows, err := service.ListDateConfigs(ctl.DB.DB().WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDateConfigs(rows))
}

func (ctl *DayInfoController) PutDateConfig(c *fiber.Ctx) error {
	date, err := ctl.getDate(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.PutDateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	m, err := service.MergeDateConfig(
		ctl.DB.DB().WithContext(c.UserContext()),
		date,
		req.DateConfigColor,
		req.DateConfigDayType,
		req.DateConfigIsAccess,
	)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Saved", dto.FromDateConfig(m))
}
