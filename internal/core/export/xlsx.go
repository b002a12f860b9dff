package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

const sheetName = "Registros"

func renderXLSX(events []domain.AttendanceEvent) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	for col, title := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, ev := range events {
		row := i + 2
		values := []string{ev.Nome, ev.CPF, string(ev.Action), displayTime(ev.Timestamp)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Freeze the header row.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: freeze panes: %w", err)
	}

	// Filter spanning the header and every data row.
	lastRow := len(events) + 1
	if err := f.AutoFilter(sheetName, fmt.Sprintf("A1:D%d", lastRow), nil); err != nil {
		return nil, fmt.Errorf("xlsx: auto filter: %w", err)
	}

	// Widths tuned for name / CPF / action / timestamp content.
	widths := map[string]float64{"A": 32, "B": 16, "C": 12, "D": 20}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("xlsx: column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}
