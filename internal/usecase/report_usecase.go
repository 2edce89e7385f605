//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_report_usecase.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/defectrack/internal/domain"
)

// ExportFormat はレポートの出力形式です
type ExportFormat struct {
	value string
}

var (
	FormatCSV  = ExportFormat{value: "csv"}
	FormatXLSX = ExportFormat{value: "xlsx"}
)

// ParseExportFormat は書き出し形式を解釈します。省略時はCSVです
func ParseExportFormat(s string) (ExportFormat, error) {
	switch s {
	case "", FormatCSV.value:
		return FormatCSV, nil
	case FormatXLSX.value:
		return FormatXLSX, nil
	default:
		return ExportFormat{}, ErrInvalidExportFormat
	}
}

func (f ExportFormat) String() string {
	return f.value
}

// ReportWriter は欠陥一覧を特定の形式で書き出します
type ReportWriter interface {
	ContentType() string
	Write(w io.Writer, defects []*domain.Defect) error
}

type ReportUseCase interface {
	// ExportDefects は filter に一致する欠陥を format で w へ書き出し、
	// レスポンスの Content-Type を返します
	ExportDefects(ctx context.Context, actor *domain.Actor, filter domain.DefectFilter, format ExportFormat, w io.Writer) (string, error)
}

type reportUseCaseImpl struct {
	defectRepo domain.DefectRepository
	writers    map[ExportFormat]ReportWriter
	policy     domain.PolicyEvaluator
}

func NewReportUseCase(defectRepo domain.DefectRepository, csvWriter, xlsxWriter ReportWriter, policy domain.PolicyEvaluator) ReportUseCase {
	return &reportUseCaseImpl{
		defectRepo: defectRepo,
		writers: map[ExportFormat]ReportWriter{
			FormatCSV:  csvWriter,
			FormatXLSX: xlsxWriter,
		},
		policy: policy,
	}
}

const exportPageSize = 500

func (uc *reportUseCaseImpl) ExportDefects(ctx context.Context, actor *domain.Actor, filter domain.DefectFilter, format ExportFormat, w io.Writer) (string, error) {
	writer, ok := uc.writers[format]
	if !ok {
		return "", ErrInvalidExportFormat
	}

	if !uc.policy.Decide(actor, domain.ActionReportExport, domain.Target{}).Allowed() {
		return "", ErrAuthorizationDenied
	}

	var defects []*domain.Defect
	for skip := 0; ; skip += exportPageSize {
		page, err := uc.defectRepo.List(ctx, filter, skip, exportPageSize)
		if err != nil {
			return "", err
		}
		defects = append(defects, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	if err := writer.Write(w, defects); err != nil {
		return "", err
	}
	return writer.ContentType(), nil
}
