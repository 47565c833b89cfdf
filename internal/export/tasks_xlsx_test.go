package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"choreboard/internal/model"
)

func strPtr(s string) *string { return &s }

func TestTasksWorkbook(t *testing.T) {
	done := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	tasks := []model.TaskView{
		{
			Task: model.Task{
				ID:          1,
				Title:       "Dishes",
				Description: strPtr("after dinner"),
				DueDate:     strPtr("2026-03-05"),
				Priority:    strPtr(model.PriorityHigh),
				Status:      model.StatusPending,
			},
			RoomName:     strPtr("Kitchen"),
			RoommateName: strPtr("Ana"),
		},
		{
			Task: model.Task{
				ID:          2,
				Title:       "Trash",
				Status:      model.StatusDone,
				CompletedAt: model.NewNullTime(done),
			},
		},
	}

	data, err := TasksWorkbook(tasks)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{"1", "Dishes", "after dinner", "Kitchen", "Ana", "2026-03-05", "High", "Pending"}, trimTrailing(rows[1]))
	assert.Equal(t, "Trash", rows[2][1])
	assert.Equal(t, "done", rows[2][7])
	assert.Equal(t, "2026-03-04T10:30:00Z", rows[2][8])
}

func TestTasksWorkbook_Empty(t *testing.T) {
	data, err := TasksWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Headers, rows[0])
}

// trimTrailing drops the empty cells excelize may report at the end of a row.
func trimTrailing(row []string) []string {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return row
}
