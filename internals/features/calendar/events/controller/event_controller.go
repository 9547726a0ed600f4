// file: internals/features/calendar/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolcal_backend/internals/constants"
	database "schoolcal_backend/internals/databases"
	dto "schoolcal_backend/internals/features/calendar/events/dto"
	model "schoolcal_backend/internals/features/calendar/events/model"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
)

type EventController struct {
	DB        *database.Handle
	Validator *validator.Validate
}

func NewEventController(db *database.Handle) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *EventController) getID(c *fiber.Ctx) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params("id"))
	if param == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

/*
=========================================================

	LIST
	GET /api/events
	Query: school, date
	=========================================================
*/
func (ctl *EventController) List(c *fiber.Ctx) error {
	tx := ctl.DB.DB().WithContext(c.UserContext()).Model(&model.Event{})

	if school := strings.ToLower(strings.TrimSpace(c.Query("school"))); school != "" {
		if !constants.ValidSchool(school) {
			return helper.JsonFromError(c, helper.NewValidationError("school must be one of wlhs, wvhs", "school"))
		}
		tx = tx.Where("event_school = ?", school)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		canonical, err := dateutil.Normalize(date, "date")
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		tx = tx.Where("event_date = ?", dateutil.ToTime(canonical))
	}

	var rows []model.Event
	if err := tx.
		Order("event_date ASC").
		Order("event_time ASC").
		Order("event_id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonList(c, "", dto.FromModels(rows))
}

/*
=========================================================

	CREATE
	POST /api/events
	=========================================================
*/
func (ctl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonFromError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}

	if err := ctl.DB.DB().WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "event already exists")
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonCreated(c, "Created", dto.FromModel(m))
}

/*
=========================================================

	UPDATE (full replace of mutable fields)
	PUT /api/events/:id
	=========================================================
*/
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonFromError(c, err)
	}

	db := ctl.DB.DB().WithContext(c.UserContext())

	var m model.Event
	if err := db.Where("event_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonFromError(c, helper.NewNotFoundError("event", id.String()))
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonFromError(c, err)
	}

	if err := db.Save(&m).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonUpdated(c, "Updated", dto.FromModel(&m))
}

/*
=========================================================

	DELETE
	DELETE /api/events/:id
	=========================================================
*/
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.DB().WithContext(c.UserContext())

	var m model.Event
	if err := db.Where("event_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonFromError(c, helper.NewNotFoundError("event", id.String()))
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	if err := db.Delete(&m).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonDeleted(c, "Deleted", fiber.Map{
		"event_id": id,
	})
}
