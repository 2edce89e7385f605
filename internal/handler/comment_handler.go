package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

func (h *CommentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	defectID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CommentRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	comment, err := h.commentUseCase.Create(ctx, actor, defectID, req.Content)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

func (h *CommentHandler) ListForDefect(c echo.Context) error {
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

	comments, err := h.commentUseCase.ListForDefect(ctx, actor, defectID, skip, limit)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCommentListResponse(comments))
}

func (h *CommentHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CommentRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	comment, err := h.commentUseCase.Update(ctx, actor, id, req.Content)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

func (h *CommentHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentUseCase.Delete(ctx, actor, id); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
