// file: internals/features/calendar/events/controller/event_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "schoolcal_backend/internals/databases"
	dto "schoolcal_backend/internals/features/calendar/events/dto"
	model "schoolcal_backend/internals/features/calendar/events/model"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Event{}))

	app := fiber.New()
	ctl := NewEventController(database.NewHandle(db))
	grp := app.Group("/api/events")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func listEvents(t *testing.T, app *fiber.App) []dto.EventResponse {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/events/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var envelope struct {
		Data []dto.EventResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestCreateThenListRoundTrip(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/events/", fiber.Map{
		"event_school":     "wlhs",
		"event_date":       "2025-09-01T18:00:00Z",
		"event_title":      "Back to School Night",
		"event_department": "Science",
		"event_time":       "18:00",
	})
	require.Equal(t, fiber.StatusCreated, status, body)

	rows := listEvents(t, app)
	require.Len(t, rows, 1)
	assert.Equal(t, "wlhs", rows[0].EventSchool)
	// datetime input normalized to the written calendar date
	assert.Equal(t, "2025-09-01", rows[0].EventDate)
	assert.Equal(t, "Back to School Night", rows[0].EventTitle)
	require.NotNil(t, rows[0].EventTime)
	assert.Equal(t, "18:00:00", *rows[0].EventTime)
}

func TestCreateRejectsUnknownSchool(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/events/", fiber.Map{
		"event_school": "other",
		"event_date":   "2025-09-01",
		"event_title":  "x",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
}

func TestListOrderingIdTiebreak(t *testing.T) {
	app := newTestApp(t)

	// same date, no time: order must still be total, by id ascending
	for i := 0; i < 5; i++ {
		status, _ := doJSON(t, app, "POST", "/api/events/", fiber.Map{
			"event_school": "wvhs",
			"event_date":   "2025-09-01",
			"event_title":  "Same Day Event",
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	rows := listEvents(t, app)
	require.Len(t, rows, 5)
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.EventID.String())
	}
	assert.True(t, sort.StringsAreSorted(ids), "ids not ascending: %v", ids)
}

func TestUpdateUnknownIdIsNotFound(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "PUT", "/api/events/6b1a3bfc-0000-4000-8000-000000000000", fiber.Map{
		"event_title": "whatever",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])

	// and no row was silently created
	assert.Empty(t, listEvents(t, app))
}

func TestDeleteUnknownIdIsNotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/api/events/6b1a3bfc-0000-4000-8000-000000000000", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateReplacesMutableSubsetOnly(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, "POST", "/api/events/", fiber.Map{
		"event_school":      "wlhs",
		"event_date":        "2025-09-01",
		"event_title":       "Old",
		"event_description": "old desc",
	})
	require.Equal(t, fiber.StatusCreated, status)
	id := created["data"].(map[string]any)["event_id"].(string)

	status, _ = doJSON(t, app, "PUT", "/api/events/"+id, fiber.Map{
		"event_title": "New",
	})
	require.Equal(t, fiber.StatusOK, status)

	rows := listEvents(t, app)
	require.Len(t, rows, 1)
	assert.Equal(t, "New", rows[0].EventTitle)
	assert.Equal(t, "", rows[0].EventDescription) // omitted -> default
	assert.Equal(t, "wlhs", rows[0].EventSchool)  // immutable
	assert.Equal(t, "2025-09-01", rows[0].EventDate)
}
