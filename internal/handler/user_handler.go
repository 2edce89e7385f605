package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// Register はセルフ登録です。要求されたロールに関わらず最小権限が適用されます
func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateUserRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	user, err := h.userUseCase.Register(ctx, req.ToInput())
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Create は管理側のユーザー作成で、要求されたロールをそのまま反映します
func (h *UserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	user, err := h.userUseCase.Create(ctx, actor, req.ToInput())
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) GetMe(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	user, err := h.userUseCase.GetMe(ctx, actor)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUseCase.Get(ctx, actor, id)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	skip, limit, err := dto.ParsePagination(c)
	if err != nil {
		return mapUseCaseError(err)
	}

	users, err := h.userUseCase.List(ctx, actor, skip, limit)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()

	actor, err := middleware.ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateRoleRequestDTO
	if err := c.Bind(&req); err != nil {
		return errInvalidBody(err)
	}

	user, err := h.userUseCase.UpdateRole(ctx, actor, id, req.Role)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
