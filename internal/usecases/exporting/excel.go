package exporting

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	excelSheetName          = "Báo cáo"
	excelDefaultColumnWidth = 18.0
)

// generateExcel monta a planilha: linha de título opcional, cabeçalho
// estilizado e uma linha por registro. Zero linhas gera planilha só com
// cabeçalho, útil como modelo.
func (s *Service) generateExcel(req Request, cells [][]string) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, excelSheetName); err != nil {
		return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
	}
	sheet = excelSheetName

	headerRow := 1

	if req.Title != "" {
		if err := s.writeExcelTitle(file, sheet, req); err != nil {
			return nil, err
		}
		headerRow = 2
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"305496"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	for i, column := range req.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
		}

		if err := file.SetCellValue(sheet, cell, column.Title); err != nil {
			return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
		}

		if err := file.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
		}

		width := column.Width
		if width <= 0 {
			width = excelDefaultColumnWidth
		}

		columnName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
		}

		if err := file.SetColWidth(sheet, columnName, columnName, width); err != nil {
			return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
		}
	}

	for i, row := range cells {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, headerRow+1+i)
			if err != nil {
				return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
			}

			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	return buffer.Bytes(), nil
}

// writeExcelTitle escreve a linha de título mesclada sobre todas as colunas
func (s *Service) writeExcelTitle(file *excelize.File, sheet string, req Request) error {
	titleStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	lastColumn, err := excelize.ColumnNumberToName(len(req.Columns))
	if err != nil {
		return errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	if err := file.MergeCell(sheet, "A1", lastColumn+"1"); err != nil {
		return errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	if err := file.SetCellValue(sheet, "A1", req.Title); err != nil {
		return errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	if err := file.SetCellStyle(sheet, "A1", lastColumn+"1", titleStyle); err != nil {
		return errors.Wrapf(ErrGeneration, "excel: %v", err)
	}

	return nil
}
