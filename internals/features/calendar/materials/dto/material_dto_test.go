// file: internals/features/calendar/materials/dto/material_dto_test.go
package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "schoolcal_backend/internals/helpers"
)

func newValidator() *validator.Validate { return validator.New() }

func validCreate() CreateMaterialRequest {
	return CreateMaterialRequest{
		MaterialSchool:     "wvhs",
		MaterialDate:       "2025-09-01",
		MaterialGradeLevel: FlexInt{Set: true, Valid: true, Value: 10},
		MaterialTitle:      "Chapter 1 Notes",
		MaterialLink:       "https://example.com/notes.pdf",
	}
}

func TestFlexIntAcceptsNumberAndString(t *testing.T) {
	var req CreateMaterialRequest
	require.NoError(t, json.Unmarshal([]byte(`{"material_grade_level": 11}`), &req))
	assert.True(t, req.MaterialGradeLevel.Set)
	assert.True(t, req.MaterialGradeLevel.Valid)
	assert.Equal(t, 11, req.MaterialGradeLevel.Value)

	req = CreateMaterialRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"material_grade_level": "12"}`), &req))
	assert.True(t, req.MaterialGradeLevel.Set)
	assert.True(t, req.MaterialGradeLevel.Valid)
	assert.Equal(t, 12, req.MaterialGradeLevel.Value)
}

func TestFlexIntNonNumericFailsDomainCheckNotDecode(t *testing.T) {
	var req CreateMaterialRequest
	require.NoError(t, json.Unmarshal([]byte(`{"material_grade_level": "ninth"}`), &req))
	assert.True(t, req.MaterialGradeLevel.Set)
	assert.False(t, req.MaterialGradeLevel.Valid)

	full := validCreate()
	full.MaterialGradeLevel = req.MaterialGradeLevel
	full.Normalize()
	err := full.Validate(newValidator())
	require.Error(t, err)

	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"material_grade_level"}, ve.Fields)
	assert.Contains(t, ve.Message, "9, 10, 11, 12")
}

func TestValidateListsAllMissingFields(t *testing.T) {
	req := CreateMaterialRequest{}
	req.Normalize()
	err := req.Validate(newValidator())
	require.Error(t, err)

	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t,
		[]string{"material_school", "material_date", "material_grade_level", "material_title", "material_link"},
		ve.Fields)
}

func TestValidateChecksSchoolBeforeGrade(t *testing.T) {
	req := validCreate()
	req.MaterialSchool = "other"
	req.MaterialGradeLevel = FlexInt{Set: true, Valid: true, Value: 13}
	req.Normalize()
	err := req.Validate(newValidator())
	require.Error(t, err)

	// both domains are wrong; school is checked first
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"material_school"}, ve.Fields)
}

func TestValidateRejectsGradeOutsideDomain(t *testing.T) {
	req := validCreate()
	req.MaterialGradeLevel = FlexInt{Set: true, Valid: true, Value: 13}
	req.Normalize()
	err := req.Validate(newValidator())
	require.Error(t, err)

	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"material_grade_level"}, ve.Fields)
}

func TestToModelDefaultsOptionalFields(t *testing.T) {
	req := validCreate()
	req.Normalize()
	require.NoError(t, req.Validate(newValidator()))

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "", m.MaterialDescription)
	assert.Equal(t, "", m.MaterialPassword)
	assert.Equal(t, 10, m.MaterialGradeLevel)
	assert.Equal(t, "2025-09-01", m.MaterialDate.Format("2006-01-02"))
}

func TestUpdateApplyReplacesMutableSubset(t *testing.T) {
	req := validCreate()
	req.MaterialDescription = "old description"
	req.MaterialPassword = "letmein"
	req.Normalize()
	m, err := req.ToModel()
	require.NoError(t, err)

	upd := UpdateMaterialRequest{
		MaterialTitle: "Chapter 2 Notes",
		MaterialLink:  "https://example.com/ch2.pdf",
	}
	upd.Normalize()
	require.NoError(t, upd.Validate(newValidator()))
	upd.Apply(m)

	assert.Equal(t, "Chapter 2 Notes", m.MaterialTitle)
	assert.Equal(t, "https://example.com/ch2.pdf", m.MaterialLink)
	// omitted optional fields reset, immutables stay
	assert.Equal(t, "", m.MaterialDescription)
	assert.Equal(t, "", m.MaterialPassword)
	assert.Equal(t, "wvhs", m.MaterialSchool)
	assert.Equal(t, 10, m.MaterialGradeLevel)
}

func TestUpdateRequiresTitleAndLink(t *testing.T) {
	upd := UpdateMaterialRequest{}
	upd.Normalize()
	err := upd.Validate(newValidator())
	require.Error(t, err)

	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"material_title", "material_link"}, ve.Fields)
}
