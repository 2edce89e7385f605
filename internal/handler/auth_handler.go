package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Login はフォームエンコードされた資格情報を受け取り、ベアラートークンを発行します
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return middleware.NewAppError(http.StatusUnprocessableEntity, "usernameとpasswordは必須です", nil)
	}

	token, err := h.authUseCase.Login(ctx, username, password)
	if err != nil {
		return mapUseCaseError(err)
	}

	return c.JSON(http.StatusOK, dto.NewTokenResponse(token))
}
