package report

import (
	"fmt"
	"io"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
	"github.com/xuri/excelize/v2"
)

var _ usecase.ReportWriter = (*XLSXWriter)(nil)

const sheetName = "Defects"

// XLSXWriter は欠陥一覧をExcelブックとして書き出します
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (w *XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *XLSXWriter) Write(out io.Writer, defects []*domain.Defect) error {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	index, err := file.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err := writeRow(file, 1, reportHeader); err != nil {
		return err
	}
	for i, defect := range defects {
		if err := writeRow(file, i+2, defectRecord(defect)); err != nil {
			return err
		}
	}

	if err := file.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(file *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	record := make([]interface{}, len(values))
	for i, v := range values {
		record[i] = v
	}
	if err := file.SetSheetRow(sheetName, cell, &record); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}
