package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// area is a rectangular cell range, 1-based and inclusive.
type area struct {
	R1, C1, R2, C2 int
}

// printArea returns the first print area defined for sheetName, if any.
// A print area lets a workbook mark which block of a busy sheet holds the
// measurement grid.
func printArea(f *excelize.File, sheetName string) (area, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return areas[0], true
		}
	}
	return area{}, false
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []area) {
	var areas []area
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if a, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, a)
		}
	}

	return sheetName, areas
}

// parseRange parses a range such as $A$1:$D$10.
func parseRange(rangeStr string) (area, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return area{}, false
	}

	return area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}

// crop extracts the cells of a from rows, padding short rows with blanks.
func (a area) crop(rows [][]string) [][]string {
	records := make([][]string, 0, a.R2-a.R1+1)
	for r := a.R1 - 1; r < a.R2; r++ {
		record := make([]string, a.C2-a.C1+1)
		if r < len(rows) {
			row := rows[r]
			for c := a.C1 - 1; c < a.C2 && c < len(row); c++ {
				record[c-(a.C1-1)] = row[c]
			}
		}
		records = append(records, record)
	}
	return records
}
