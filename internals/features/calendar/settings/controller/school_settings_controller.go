// file: internals/features/calendar/settings/controller/school_settings_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolcal_backend/internals/constants"
	database "schoolcal_backend/internals/databases"
	dto "schoolcal_backend/internals/features/calendar/settings/dto"
	model "schoolcal_backend/internals/features/calendar/settings/model"
	helper "schoolcal_backend/internals/helpers"
)

type SchoolSettingsController struct {
	DB *database.Handle
}

func NewSchoolSettingsController(db *database.Handle) *SchoolSettingsController {
	return &SchoolSettingsController{DB: db}
}

func (ctl *SchoolSettingsController) getSchool(c *fiber.Ctx) (string, error) {
	school := strings.ToLower(strings.TrimSpace(c.Params("school")))
	if !constants.ValidSchool(school) {
		return "", helper.NewValidationError("school must be one of wlhs, wvhs", "school")
	}
	return school, nil
}

/*
=========================================================

	GET /api/settings/:school
	Unset settings come back as an empty document, not 404.
	=========================================================
*/
func (ctl *SchoolSettingsController) Get(c *fiber.Ctx) error {
	school, err := ctl.getSchool(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var m model.SchoolSettings
	if err := ctl.DB.DB().WithContext(c.UserContext()).
		Where("school_settings_school = ?", school).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = model.SchoolSettings{SchoolSettingsSchool: school}
			return helper.JsonOK(c, "", dto.FromModel(&m))
		}
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonOK(c, "", dto.FromModel(&m))
}

/*
=========================================================

	PUT /api/settings/:school
	Body: the settings document itself (JSON object). Whole-document
	replace on conflict.
	=========================================================
*/
func (ctl *SchoolSettingsController) Put(c *fiber.Ctx) error {
	school, err := ctl.getSchool(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte(`{}`)
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return helper.JsonFromError(c, helper.NewValidationError("settings body must be a JSON object", "school_settings_data"))
	}

	m := model.SchoolSettings{
		SchoolSettingsSchool: school,
		SchoolSettingsData:   datatypes.JSON(body),
	}
	if err := ctl.DB.DB().WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "school_settings_school"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"school_settings_data":       datatypes.JSON(body),
			"school_settings_updated_at": time.Now(),
		}),
	}).Create(&m).Error; err != nil {
		return helper.JsonFromError(c, helper.NewStoreError(err))
	}

	return helper.JsonUpdated(c, "Saved", dto.FromModel(&m))
}
