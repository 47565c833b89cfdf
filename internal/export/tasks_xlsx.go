// Package export renders task lists as spreadsheet downloads.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"choreboard/internal/model"
)

// SheetName is the worksheet holding the exported tasks.
const SheetName = "Tasks"

// Headers are the column titles of the task sheet, in order.
var Headers = []string{"ID", "Title", "Description", "Room", "Roommate", "Due Date", "Priority", "Status", "Completed At"}

var columnWidths = []float64{8, 32, 40, 16, 20, 12, 10, 10, 22}

// TasksWorkbook builds an XLSX workbook with one row per task below a frozen
// header row.
func TasksWorkbook(tasks []model.TaskView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	for i, t := range tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := taskRow(t)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write task %d: %w", t.ID, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func taskRow(t model.TaskView) []any {
	completed := ""
	if t.CompletedAt.Valid {
		completed = t.CompletedAt.Time.UTC().Format(time.RFC3339)
	}
	return []any{
		t.ID,
		t.Title,
		deref(t.Description),
		deref(t.RoomName),
		deref(t.RoommateName),
		deref(t.DueDate),
		deref(t.Priority),
		t.Status,
		completed,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
