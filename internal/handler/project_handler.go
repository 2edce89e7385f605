package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type ProjectHandler struct {
	projectUseCase usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

// CreateForUser はURLで指定されたユーザーをオーナーとしてプロジェクトを作成します
func (h *ProjectHandler) CreateForUser(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	userID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var req dto.CreateProjectRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	project, err := h.projectUseCase.CreateForUser(ctx, actor, userID, req.Title, req.Description)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

func (h *ProjectHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	skip, limit, err := dto.ParsePagination(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	projects, err := h.projectUseCase.List(ctx, actor, skip, limit)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewProjectListResponse(projects))
}

func (h *ProjectHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectUseCase.Get(ctx, actor, id)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

func (h *ProjectHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	project, err := h.projectUseCase.Update(ctx, actor, id, req.Title, req.Description)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectUseCase.Delete(ctx, actor, id); err != nil {
		return mapUseCaseError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
