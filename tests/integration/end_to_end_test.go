package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"choreboard/internal/database"
	"choreboard/internal/handler"
	"choreboard/internal/model"
	"choreboard/internal/repositories"
	"choreboard/internal/service"
	"choreboard/migrations"
)

type api struct {
	t *testing.T
	r *gin.Engine
}

// newAPI wires the real router, services and repositories over a fresh
// SQLite file.
func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.EnsureSchema(db))
	_, err = migrations.SeedRooms(context.Background(), db, migrations.DefaultRooms)
	require.NoError(t, err)

	logger := zap.NewNop()
	r := handler.NewRouter(handler.RouterDeps{
		Tasks:     handler.NewTaskHandler(service.NewTaskService(repositories.NewTaskRepository(db)), logger),
		Roommates: handler.NewRoommateHandler(service.NewRoommateService(repositories.NewRoommateRepository(db)), logger),
		Rooms:     handler.NewRoomHandler(service.NewRoomService(repositories.NewRoomRepository(db)), logger),
		Logger:    logger,
	})
	return &api{t: t, r: r}
}

func (a *api) do(method, path string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func date(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(model.DueDateLayout)
}

func TestEndToEnd_TaskLifecycle(t *testing.T) {
	a := newAPI(t)

	var ana model.Roommate
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/roommates", map[string]string{"name": "Ana", "email": "ana@example.com"}, &ana))

	// the dashboard posts select values as strings
	var created model.Task
	code := a.do(http.MethodPost, "/tasks", map[string]any{
		"title":       "Dishes",
		"description": "after dinner",
		"roommate_id": fmt.Sprint(ana.ID),
		"room_id":     "1",
		"due_date":    date(2),
		"priority":    "High",
		"status":      "done",
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.False(t, created.CompletedAt.Valid)
	require.NotNil(t, created.RoommateID)
	assert.Equal(t, ana.ID, *created.RoommateID)

	var upcoming []model.TaskView
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks/upcoming", nil, &upcoming))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Kitchen", *upcoming[0].RoomName)

	// completion ignores every other field
	var done model.Task
	require.Equal(t, http.StatusOK, a.do(http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID), map[string]any{"status": "done", "title": "ignored"}, &done))
	assert.Equal(t, model.StatusDone, done.Status)
	assert.Equal(t, "Dishes", done.Title)
	require.True(t, done.CompletedAt.Valid)

	var week []model.Task
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks/completed-week", nil, &week))
	require.Len(t, week, 1)
	assert.Equal(t, created.ID, week[0].ID)

	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks/upcoming", nil, &upcoming))
	assert.Empty(t, upcoming)

	// overwrite keeps status, completion stamp and assignee; absent fields become null
	var edited model.Task
	require.Equal(t, http.StatusOK, a.do(http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID), map[string]any{"title": "Dishes and pans"}, &edited))
	assert.Equal(t, "Dishes and pans", edited.Title)
	assert.Nil(t, edited.Description)
	assert.Nil(t, edited.RoomID)
	assert.Equal(t, model.StatusDone, edited.Status)
	assert.True(t, edited.CompletedAt.Valid)
	assert.Equal(t, created.RoommateID, edited.RoommateID)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPut, "/tasks/999", map[string]any{"status": "done"}, nil))
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID), map[string]any{"title": ""}, nil))

	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil, nil))
	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, fmt.Sprintf("/tasks/%d", created.ID), nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, fmt.Sprintf("/tasks/%d", created.ID), nil, nil))
}

func TestEndToEnd_OverdueAndRoommateRemoval(t *testing.T) {
	a := newAPI(t)

	var ana, ben model.Roommate
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/roommates", map[string]string{"name": "Ana", "email": "ana@example.com"}, &ana))
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/roommates", map[string]string{"name": "Ben", "email": "ben@example.com"}, &ben))
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/roommates", map[string]string{"name": "Copy", "email": "ana@example.com"}, nil))

	for _, tk := range []map[string]any{
		{"title": "Trash", "roommate_id": ana.ID, "due_date": date(-2)},
		{"title": "Mop", "roommate_id": ana.ID, "due_date": date(-1)},
		{"title": "Plants", "roommate_id": ben.ID, "due_date": date(-1)},
		{"title": "Nobody's", "due_date": date(-1)},
		{"title": "Today", "roommate_id": ana.ID, "due_date": date(0)},
	} {
		require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/tasks", tk, nil))
	}

	var overdue []model.TaskView
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks/overdue", nil, &overdue))
	require.Len(t, overdue, 3)
	assert.Equal(t, "Trash", overdue[0].Title)
	assert.Equal(t, "ana@example.com", *overdue[0].RoommateEmail)

	var removed struct {
		Unassigned int64 `json:"tasks_unassigned"`
	}
	require.Equal(t, http.StatusOK, a.do(http.MethodDelete, fmt.Sprintf("/roommates/%d", ana.ID), nil, &removed))
	assert.Equal(t, int64(3), removed.Unassigned)

	var tasks []model.Task
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks", nil, &tasks))
	assert.Len(t, tasks, 5)

	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/tasks/overdue", nil, &overdue))
	require.Len(t, overdue, 1)
	assert.Equal(t, "Plants", overdue[0].Title)

	var roommates []model.Roommate
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/roommates", nil, &roommates))
	assert.Equal(t, []model.Roommate{ben}, roommates)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/tasks", map[string]any{"title": "Ghost", "roommate_id": ana.ID}, nil))
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPut, fmt.Sprintf("/roommates/%d", ana.ID), map[string]string{"name": "Ana", "email": "ana@example.com"}, nil))
}

func TestEndToEnd_RoomsAndExport(t *testing.T) {
	a := newAPI(t)

	var rooms []model.Room
	require.Equal(t, http.StatusOK, a.do(http.MethodGet, "/rooms", nil, &rooms))
	require.Len(t, rooms, 4)
	assert.Equal(t, "Trash Area", rooms[3].Name)

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/tasks", map[string]any{"title": "Laundry", "room_id": 2}, nil))

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
