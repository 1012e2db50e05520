package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/invertedv/timeuse"
	"github.com/invertedv/timeuse/model"
)

const (
	analysisSheet = "analysis"
	modelsSheet   = "models"
)

// SaveXLSX writes the analysis table and the model summaries to one
// workbook.
func SaveXLSX(fileName string, frame *timeuse.Frame, specs []ModelSpec, fits []*model.Fit) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if e := wb.SetSheetName("Sheet1", analysisSheet); e != nil {
		return e
	}

	if e := writeFrame(wb, frame); e != nil {
		return e
	}

	if _, e := wb.NewSheet(modelsSheet); e != nil {
		return e
	}

	if e := writeFits(wb, specs, fits); e != nil {
		return e
	}

	return wb.SaveAs(fileName)
}

func writeFrame(wb *excelize.File, frame *timeuse.Frame) error {
	for colInd, name := range frame.ColumnNames() {
		var (
			cell string
			e    error
		)
		if cell, e = excelize.CoordinatesToCellName(colInd+1, 1); e != nil {
			return e
		}

		if e = wb.SetCellValue(analysisSheet, cell, name); e != nil {
			return e
		}
	}

	colInd := 0
	for c := frame.Next(true); c != nil; c = frame.Next(false) {
		colInd++
		for row := 0; row < frame.RowCount(); row++ {
			var (
				cell string
				e    error
			)
			if cell, e = excelize.CoordinatesToCellName(colInd, row+2); e != nil {
				return e
			}

			if e = wb.SetCellValue(analysisSheet, cell, c.Data().Element(row)); e != nil {
				return e
			}
		}
	}

	return nil
}

func writeFits(wb *excelize.File, specs []ModelSpec, fits []*model.Fit) error {
	row := 1
	for ind, f := range fits {
		label := f.YName
		if ind < len(specs) {
			label = specs[ind].Label
		}

		header := []any{label, fmt.Sprintf("n=%d", f.N), fmt.Sprintf("R2=%.4f", f.R2), fmt.Sprintf("AIC=%.1f", f.AIC)}
		if e := setRow(wb, row, header); e != nil {
			return e
		}
		row++

		if e := setRow(wb, row, []any{"term", "coef", "stdErr", "t"}); e != nil {
			return e
		}
		row++

		for j, t := range f.Terms {
			if e := setRow(wb, row, []any{t, f.Coef[j], f.StdErr[j], f.TStat[j]}); e != nil {
				return e
			}
			row++
		}

		row++ // blank row between models
	}

	return nil
}

func setRow(wb *excelize.File, row int, vals []any) error {
	for colInd, v := range vals {
		var (
			cell string
			e    error
		)
		if cell, e = excelize.CoordinatesToCellName(colInd+1, row); e != nil {
			return e
		}

		if e = wb.SetCellValue(modelsSheet, cell, v); e != nil {
			return e
		}
	}

	return nil
}
