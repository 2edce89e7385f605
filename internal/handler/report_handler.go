package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
}

func NewReportHandler(reportUseCase usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// Export は絞り込み条件に一致する欠陥一覧をファイルとして書き出します
func (h *ReportHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	format, err := usecase.ParseExportFormat(c.QueryParam("format"))
	if err != nil {
		return mapUseCaseError(err)
	}

	filter, err := dto.ParseDefectFilter(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	// 書き出し途中のエラーでもヘッダを確定させないよう、一度バッファへ書き出す
	var buf bytes.Buffer
	contentType, err := h.reportUseCase.ExportDefects(ctx, actor, filter, format, &buf)
	if err != nil {
		return mapUseCaseError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=defects_report.%s", format))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
