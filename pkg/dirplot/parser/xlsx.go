package parser

import (
	"errors"
	"path/filepath"

	"github.com/ukaji3/dirplot-go/pkg/dirplot/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// LoadXLSX reads the first worksheet of an Excel workbook into a
// DirectivityTable. The table is the sheet's print area when one is defined,
// otherwise the bounding box of non-empty cells. Blank cells inside it are
// parse errors.
func LoadXLSX(path string, opts LoadOptions) (*models.DirectivityTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}

	// Stored values, not display text: number formats would round or decorate them.
	rows, err := f.GetRows(sheetList[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var records [][]string
	var firstRow int
	if a, ok := printArea(f, sheetList[0]); ok {
		records, firstRow = a.crop(rows), a.R1-1
	} else {
		records, firstRow = cropToData(rows)
	}

	offset := firstRow
	if opts.SkipHeader && len(records) > 0 {
		records = records[1:]
		offset++
	}

	numeric, err := parseRows(records, offset)
	if err != nil {
		return nil, err
	}

	return models.NewDirectivityTable(filepath.Base(path), numeric)
}

// cropToData returns the rectangular block spanning all non-empty cells,
// padded so every record has the same width, plus the 0-based index of its
// first row.
func cropToData(rows [][]string) ([][]string, int) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, 0
	}

	a := area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	return a.crop(rows), minRow
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
