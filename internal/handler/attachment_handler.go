package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

// アップロードはサーバーを経由してストレージへ流すため、上限を設けます
const maxUploadSize = 50 << 20

type AttachmentHandler struct {
	attachmentUseCase usecase.AttachmentUseCase
}

func NewAttachmentHandler(attachmentUseCase usecase.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentUseCase: attachmentUseCase,
	}
}

// Upload はmultipartの file フィールドを受け取り、ストレージへ保存します
func (h *AttachmentHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	defectID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(http.StatusUnprocessableEntity, "fileフィールドが見つかりません", err)
	}
	if fileHeader.Size > maxUploadSize {
		return middleware.NewAppError(http.StatusRequestEntityTooLarge, "ファイルが大きすぎます", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(http.StatusUnprocessableEntity, "ファイルの読み込みに失敗しました", err)
	}
	defer src.Close()

	attachment, err := h.attachmentUseCase.Upload(ctx, actor, defectID, fileHeader.Filename, src, fileHeader.Size)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewAttachmentResponse(attachment))
}

func (h *AttachmentHandler) ListForDefect(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	defectID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	skip, limit, err := dto.ParsePagination(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	attachments, err := h.attachmentUseCase.ListForDefect(ctx, actor, defectID, skip, limit)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewAttachmentListResponse(attachments))
}

// Download はファイル本体をストリームで返します
func (h *AttachmentHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	defectID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	attachmentID, err := paramID(c, "aid")
	if err != nil {
		return err
	}

	attachment, body, err := h.attachmentUseCase.Download(ctx, actor, defectID, attachmentID)
	if err != nil {
		return mapUseCaseError(err)
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", attachment.Filename()))
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, body)
}

func (h *AttachmentHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	defectID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	attachmentID, err := paramID(c, "aid")
	if err != nil {
		return err
	}

	if err := h.attachmentUseCase.Delete(ctx, actor, defectID, attachmentID); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
