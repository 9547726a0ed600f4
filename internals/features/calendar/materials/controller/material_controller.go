// file: internals/features/calendar/materials/controller/material_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolcal_backend/internals/constants"
	database "schoolcal_backend/internals/databases"
	dto "schoolcal_backend/internals/features/calendar/materials/dto"
	model "schoolcal_backend/internals/features/calendar/materials/model"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
)

type MaterialController struct {
	DB        *database.Handle
	Validator *validator.Validate
}

func NewMaterialController(db *database.Handle) *MaterialController {
	return &MaterialController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *MaterialController) getID(c *fiber.Ctx) (uuid.UUID, error) {
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
	GET /api/materials
	Query: school, date, grade_level
	=========================================================
*/
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	tx := ctl.DB.DB().WithContext(c.UserContext()).Model(&model.Material{})

	if school := strings.ToLower(strings.TrimSpace(c.Query("school"))); school != "" {
		if !constants.ValidSchool(school) {
			return helper.JsonFromError(c, helper.NewValidationError("school must be one of wlhs, wvhs", "school"))
		}
		tx = tx.Where("material_school = ?", school)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		canonical, err := dateutil.Normalize(date, "date")
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		tx = tx.Where("material_date = ?", dateutil.ToTime(canonical))
	}
	if grade := strings.TrimSpace(c.Query("grade_level")); grade != "" {
		n, err := strconv.Atoi(grade)
		if err != nil || !constants.ValidGradeLevel(n) {
			return helper.JsonFromError(c, helper.NewValidationError("grade_level must be one of 9, 10, 11, 12", "grade_level"))
		}
		tx = tx.Where("material_grade_level = ?", n)
	}

	var rows []model.Material
	if err := tx.
		Order("material_date ASC").
		Order("material_grade_level ASC").
		Order("material_id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonList(c, "", dto.FromModels(rows))
}

/*
=========================================================

	CREATE
	POST /api/materials
	=========================================================
*/
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaterialRequest
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
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}

	if err := ctl.DB.DB().WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "material already exists")
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonCreated(c, "Created", dto.FromModel(m))
}

/*
=========================================================

	UPDATE (full replace of mutable fields)
	PUT /api/materials/:id
	=========================================================
*/
func (ctl *MaterialController) Update(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonFromError(c, err)
	}

	db := ctl.DB.DB().WithContext(c.UserContext())

	var m model.Material
	if err := db.Where("material_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonFromError(c, helper.NewNotFoundError("material", id.String()))
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	req.Apply(&m)

	if err := db.Save(&m).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonUpdated(c, "Updated", dto.FromModel(&m))
}

/*
=========================================================

	DELETE
	DELETE /api/materials/:id
	=========================================================
*/
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	db := ctl.DB.DB().WithContext(c.UserContext())

	var m model.Material
	if err := db.Where("material_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonFromError(c, helper.NewNotFoundError("material", id.String()))
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	if err := db.Delete(&m).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonDeleted(c, "Deleted", fiber.Map{
		"material_id": id,
	})
}
