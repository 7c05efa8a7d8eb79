package core

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"syncronic.com/empmonitor/monitor/model"
	"syncronic.com/empmonitor/utils"
)

const uptimeSheet = "Uptime"

var uptimeHeaders = []any{"Employee ID", "Total Uptime (min)", "Average Uptime (min)"}

// WriteUptimeWorkbook writes rows as a single-sheet xlsx workbook.
func WriteUptimeWorkbook(w io.Writer, rows []model.UptimeSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", uptimeSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(uptimeSheet, "A1", &uptimeHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	values := utils.Map(rows, func(r model.UptimeSummary) []any {
		return []any{r.EmployeeID, r.TotalUptimeMinutes, r.AvgUptimeMinutes}
	})
	for i := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(uptimeSheet, cell, &values[i]); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(uptimeSheet, "A", "C", 22); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
