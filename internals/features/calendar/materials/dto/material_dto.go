// file: internals/features/calendar/materials/dto/material_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"schoolcal_backend/internals/constants"
	model "schoolcal_backend/internals/features/calendar/materials/model"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   FlexInt: explicit numeric coercion
   =========================================================
   Clients send grade_level as a JSON number or a numeric string. Either
   form parses here; non-numeric input stays marked invalid so it fails
   the enumerated-domain check, not with a decode error. */

type FlexInt struct {
	Set   bool
	Valid bool
	Value int
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	f.Set = true
	s = strings.TrimSpace(strings.Trim(s, `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	f.Valid = true
	f.Value = n
	return nil
}

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateMaterialRequest struct {
	MaterialSchool      string  `json:"material_school"`
	MaterialDate        string  `json:"material_date"`
	MaterialGradeLevel  FlexInt `json:"material_grade_level"`
	MaterialTitle       string  `json:"material_title" validate:"omitempty,max=300"`
	MaterialLink        string  `json:"material_link" validate:"omitempty,max=2000"`
	MaterialDescription string  `json:"material_description" validate:"omitempty,max=10000"`
	MaterialPassword    string  `json:"material_password" validate:"omitempty,max=120"`
}

func (r *CreateMaterialRequest) Normalize() {
	r.MaterialSchool = strings.ToLower(strings.TrimSpace(r.MaterialSchool))
	r.MaterialDate = strings.TrimSpace(r.MaterialDate)
	r.MaterialTitle = strings.TrimSpace(r.MaterialTitle)
	r.MaterialLink = strings.TrimSpace(r.MaterialLink)
	r.MaterialDescription = strings.TrimSpace(r.MaterialDescription)
	r.MaterialPassword = strings.TrimSpace(r.MaterialPassword)
}

// Validate: presence first (all missing names together), then
// enumerated domains in declaration order: school before grade_level.
func (r *CreateMaterialRequest) Validate(v *validator.Validate) error {
	var missing []string
	if r.MaterialSchool == "" {
		missing = append(missing, "material_school")
	}
	if r.MaterialDate == "" {
		missing = append(missing, "material_date")
	}
	if !r.MaterialGradeLevel.Set {
		missing = append(missing, "material_grade_level")
	}
	if r.MaterialTitle == "" {
		missing = append(missing, "material_title")
	}
	if r.MaterialLink == "" {
		missing = append(missing, "material_link")
	}
	if len(missing) > 0 {
		return helper.MissingFieldsError(missing...)
	}
	if !constants.ValidSchool(r.MaterialSchool) {
		return helper.NewValidationError("material_school must be one of wlhs, wvhs", "material_school")
	}
	if !r.MaterialGradeLevel.Valid || !constants.ValidGradeLevel(r.MaterialGradeLevel.Value) {
		return helper.NewValidationError("material_grade_level must be one of 9, 10, 11, 12", "material_grade_level")
	}
	if err := v.Struct(r); err != nil {
		return helper.NewValidationError(err.Error())
	}
	return nil
}

func (r *CreateMaterialRequest) ToModel() (*model.Material, error) {
	date, err := dateutil.NormalizeRequired(r.MaterialDate, "material_date")
	if err != nil {
		return nil, err
	}
	return &model.Material{
		MaterialSchool:      r.MaterialSchool,
		MaterialDate:        dateutil.ToTime(date),
		MaterialGradeLevel:  r.MaterialGradeLevel.Value,
		MaterialTitle:       r.MaterialTitle,
		MaterialLink:        r.MaterialLink,
		MaterialDescription: r.MaterialDescription,
		MaterialPassword:    r.MaterialPassword,
	}, nil
}

/* =========================================================
   Requests: UPDATE (full replace of the mutable subset)
   =========================================================
   school, date and grade_level are immutable after create. Omitted
   optional fields reset to "" — not keep-previous. */

type UpdateMaterialRequest struct {
	MaterialTitle       string `json:"material_title" validate:"omitempty,max=300"`
	MaterialLink        string `json:"material_link" validate:"omitempty,max=2000"`
	MaterialDescription string `json:"material_description" validate:"omitempty,max=10000"`
	MaterialPassword    string `json:"material_password" validate:"omitempty,max=120"`
}

func (r *UpdateMaterialRequest) Normalize() {
	r.MaterialTitle = strings.TrimSpace(r.MaterialTitle)
	r.MaterialLink = strings.TrimSpace(r.MaterialLink)
	r.MaterialDescription = strings.TrimSpace(r.MaterialDescription)
	r.MaterialPassword = strings.TrimSpace(r.MaterialPassword)
}

func (r *UpdateMaterialRequest) Validate(v *validator.Validate) error {
	var missing []string
	if r.MaterialTitle == "" {
		missing = append(missing, "material_title")
	}
	if r.MaterialLink == "" {
		missing = append(missing, "material_link")
	}
	if len(missing) > 0 {
		return helper.MissingFieldsError(missing...)
	}
	if err := v.Struct(r); err != nil {
		return helper.NewValidationError(err.Error())
	}
	return nil
}

func (r *UpdateMaterialRequest) Apply(m *model.Material) {
	m.MaterialTitle = r.MaterialTitle
	m.MaterialLink = r.MaterialLink
	m.MaterialDescription = r.MaterialDescription
	m.MaterialPassword = r.MaterialPassword
}

/* =========================================================
   Responses
   ========================================================= */

type MaterialResponse struct {
	MaterialID          uuid.UUID `json:"material_id"`
	MaterialSchool      string    `json:"material_school"`
	MaterialDate        string    `json:"material_date"`
	MaterialGradeLevel  int       `json:"material_grade_level"`
	MaterialTitle       string    `json:"material_title"`
	MaterialLink        string    `json:"material_link"`
	MaterialDescription string    `json:"material_description"`
	MaterialPassword    string    `json:"material_password"`
	MaterialCreatedAt   string    `json:"material_created_at"`
	MaterialUpdatedAt   string    `json:"material_updated_at"`
}

func FromModel(m *model.Material) MaterialResponse {
	return MaterialResponse{
		MaterialID:          m.MaterialID,
		MaterialSchool:      m.MaterialSchool,
		MaterialDate:        dateutil.Format(m.MaterialDate),
		MaterialGradeLevel:  m.MaterialGradeLevel,
		MaterialTitle:       m.MaterialTitle,
		MaterialLink:        m.MaterialLink,
		MaterialDescription: m.MaterialDescription,
		MaterialPassword:    m.MaterialPassword,
		MaterialCreatedAt:   m.MaterialCreatedAt.UTC().Format(time.RFC3339),
		MaterialUpdatedAt:   m.MaterialUpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromModels(rows []model.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
