package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/medoxido/medoxido/internal/platform/db"
)

const doseNotesSheet = "Dose notes"

var DoseNotesHeader = []string{
	"Noted",
	"Note",
	"Medication",
	"Dose",
	"Unit",
	"Taken",
	"Lot",
	"Lot quantity",
	"Lot produced",
}

var doseNotesWidths = []float64{20, 40, 16, 8, 8, 20, 14, 12, 20}

// GenerateDoseNotesWorkbook writes rows to a single-sheet workbook with a
// styled header row. An empty rows slice produces only the header.
func GenerateDoseNotesWorkbook(rows []*DoseNote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(doseNotesSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, title := range DoseNotesHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(doseNotesSheet, cell, title); err != nil {
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(doseNotesSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(doseNotesSheet, col, col, doseNotesWidths[i]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			r.Created,
			r.Content,
			r.MedicationName,
			db.NumericFloat(r.DoseQuantity),
			r.Unit,
			r.DoseCreated,
			r.StoreLotNumber,
			db.NumericFloat(r.StoreStartQuantity),
			r.StoreProductionDate,
		}
		if err := f.SetSheetRow(doseNotesSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
