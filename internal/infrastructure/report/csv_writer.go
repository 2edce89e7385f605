package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
)

var _ usecase.ReportWriter = (*CSVWriter)(nil)

// CSVWriter は欠陥一覧をCSVとして書き出します
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

func (w *CSVWriter) ContentType() string {
	return "text/csv"
}

func (w *CSVWriter) Write(out io.Writer, defects []*domain.Defect) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, defect := range defects {
		if err := writer.Write(defectRecord(defect)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
