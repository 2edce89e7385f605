package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type DefectHandler struct {
	defectUseCase usecase.DefectUseCase
}

func NewDefectHandler(defectUseCase usecase.DefectUseCase) *DefectHandler {
	return &DefectHandler{
		defectUseCase: defectUseCase,
	}
}

// CreateForProject はURLで指定されたプロジェクト配下に欠陥を作成します。
// 報告者は常に認証済み操作者であり、ボディでの指定は受け付けません。
func (h *DefectHandler) CreateForProject(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	projectID, err := paramID(c, "project_id")
	if err != nil {
		return err
	}

	var req dto.CreateDefectRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	input, err := req.ToInput()
	if err != nil {
		return mapUseCaseError(err)
	}

	defect, err := h.defectUseCase.CreateForProject(ctx, actor, projectID, input)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewDefectResponse(defect))
}

// Create はプロジェクト文脈なしの作成で、対象プロジェクトはボディで指定します
func (h *DefectHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateDefectRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	input, err := req.ToInput()
	if err != nil {
		return mapUseCaseError(err)
	}

	defect, err := h.defectUseCase.Create(ctx, actor, input)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewDefectResponse(defect))
}

func (h *DefectHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	filter, err := dto.ParseDefectFilter(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	skip, limit, err := dto.ParsePagination(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	defects, err := h.defectUseCase.List(ctx, actor, filter, skip, limit)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewDefectListResponse(defects))
}

func (h *DefectHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	defect, err := h.defectUseCase.Get(ctx, actor, id)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewDefectResponse(defect))
}

func (h *DefectHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateDefectRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	update, err := req.ToUpdate()
	if err != nil {
		return mapUseCaseError(err)
	}

	defect, err := h.defectUseCase.Update(ctx, actor, id, update)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewDefectResponse(defect))
}

func (h *DefectHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.defectUseCase.Delete(ctx, actor, id); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
