// file: internals/features/calendar/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"schoolcal_backend/internals/constants"
	model "schoolcal_backend/internals/features/calendar/events/model"
	helper "schoolcal_backend/internals/helpers"
	"schoolcal_backend/internals/helpers/dateutil"
	"schoolcal_backend/internals/helpers/dbtime"
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
   Requests: CREATE
   ========================================================= */

type CreateEventRequest struct {
	EventSchool      string  `json:"event_school"`
	EventDate        string  `json:"event_date"`
	EventTitle       string  `json:"event_title" validate:"omitempty,max=300"`
	EventDepartment  *string `json:"event_department" validate:"omitempty,max=120"`
	EventTime        *string `json:"event_time"`
	EventDescription string  `json:"event_description" validate:"omitempty,max=10000"`
}

func (r *CreateEventRequest) Normalize() {
	r.EventSchool = strings.ToLower(strings.TrimSpace(r.EventSchool))
	r.EventDate = strings.TrimSpace(r.EventDate)
	r.EventTitle = strings.TrimSpace(r.EventTitle)
	r.EventDepartment = trimPtr(r.EventDepartment)
	r.EventTime = trimPtr(r.EventTime)
	r.EventDescription = strings.TrimSpace(r.EventDescription)
}

// Validate: presence first (all missing names in one error), then the
// enumerated domains in declaration order, then length caps.
func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	var missing []string
	if r.EventSchool == "" {
		missing = append(missing, "event_school")
	}
	if r.EventDate == "" {
		missing = append(missing, "event_date")
	}
	if r.EventTitle == "" {
		missing = append(missing, "event_title")
	}
	if len(missing) > 0 {
		return helper.MissingFieldsError(missing...)
	}
	if !constants.ValidSchool(r.EventSchool) {
		return helper.NewValidationError("event_school must be one of wlhs, wvhs", "event_school")
	}
	if err := v.Struct(r); err != nil {
		return helper.NewValidationError(err.Error())
	}
	return nil
}

func (r *CreateEventRequest) ToModel() (*model.Event, error) {
	date, err := dateutil.NormalizeRequired(r.EventDate, "event_date")
	if err != nil {
		return nil, err
	}
	m := &model.Event{
		EventSchool:      r.EventSchool,
		EventDate:        dateutil.ToTime(date),
		EventTitle:       r.EventTitle,
		EventDepartment:  r.EventDepartment,
		EventDescription: r.EventDescription,
	}
	if r.EventTime != nil {
		tod, err := dbtime.Parse(*r.EventTime)
		if err != nil {
			return nil, helper.NewValidationError("event_time must be HH:MM or HH:MM:SS", "event_time")
		}
		m.EventTime = &tod
	}
	return m, nil
}

/* =========================================================
   Requests: UPDATE (full replace of the mutable subset)
   =========================================================
   school and date are immutable after create. Optional fields omitted
   from the payload reset to their defaults; this is deliberately NOT the
   keep-previous merge the date_configs writes use. */

type UpdateEventRequest struct {
	EventTitle       string  `json:"event_title" validate:"omitempty,max=300"`
	EventDepartment  *string `json:"event_department" validate:"omitempty,max=120"`
	EventTime        *string `json:"event_time"`
	EventDescription string  `json:"event_description" validate:"omitempty,max=10000"`
}

func (r *UpdateEventRequest) Normalize() {
	r.EventTitle = strings.TrimSpace(r.EventTitle)
	r.EventDepartment = trimPtr(r.EventDepartment)
	r.EventTime = trimPtr(r.EventTime)
	r.EventDescription = strings.TrimSpace(r.EventDescription)
}

func (r *UpdateEventRequest) Validate(v *validator.Validate) error {
	if r.EventTitle == "" {
		return helper.MissingFieldsError("event_title")
	}
	if err := v.Struct(r); err != nil {
		return helper.NewValidationError(err.Error())
	}
	return nil
}

// Apply replaces the mutable field subset in place.
func (r *UpdateEventRequest) Apply(m *model.Event) error {
	m.EventTitle = r.EventTitle
	m.EventDepartment = r.EventDepartment
	m.EventDescription = r.EventDescription
	m.EventTime = nil
	if r.EventTime != nil {
		tod, err := dbtime.Parse(*r.EventTime)
		if err != nil {
			return helper.NewValidationError("event_time must be HH:MM or HH:MM:SS", "event_time")
		}
		m.EventTime = &tod
	}
	return nil
}

/* =========================================================
   Responses
   ========================================================= */

type EventResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventSchool      string    `json:"event_school"`
	EventDate        string    `json:"event_date"`
	EventTitle       string    `json:"event_title"`
	EventDepartment  *string   `json:"event_department"`
	EventTime        *string   `json:"event_time"`
	EventDescription string    `json:"event_description"`
	EventCreatedAt   string    `json:"event_created_at"`
	EventUpdatedAt   string    `json:"event_updated_at"`
}

func FromModel(m *model.Event) EventResponse {
	resp := EventResponse{
		EventID:          m.EventID,
		EventSchool:      m.EventSchool,
		EventDate:        dateutil.Format(m.EventDate),
		EventTitle:       m.EventTitle,
		EventDepartment:  m.EventDepartment,
		EventDescription: m.EventDescription,
		EventCreatedAt:   m.EventCreatedAt.UTC().Format(time.RFC3339),
		EventUpdatedAt:   m.EventUpdatedAt.UTC().Format(time.RFC3339),
	}
	if m.EventTime != nil {
		s := m.EventTime.String()
		resp.EventTime = &s
	}
	return resp
}

func FromModels(rows []model.Event) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
