//go:generate mockgen -source=$GOFILE -destination=../../../tests/handler/middleware/mock_require_actor.go -package=middleware
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/domain"
)

const ActorContextKey = "actor"

type AuthUseCaseInterface interface {
	Authenticate(ctx context.Context, token string) (*domain.Actor, error)
}

// RequireActor はベアラートークンを認証済み操作者に解決し、
// コンテキストへ格納するミドルウェアです。解決できない場合は 401 を返します。
func RequireActor(authUC AuthUseCaseInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			authHeader := c.Request().Header.Get("Authorization")

			if !strings.HasPrefix(authHeader, "Bearer ") {
				return NewAppError(http.StatusUnauthorized, "認証情報が見つかりません", nil)
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			actor, err := authUC.Authenticate(ctx, token)
			if err != nil {
				return NewAppError(http.StatusUnauthorized, "認証情報を検証できませんでした", err)
			}

			c.Set(ActorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFrom はミドルウェアが格納した操作者を取り出します
func ActorFrom(c echo.Context) (*domain.Actor, error) {
	actorRaw := c.Get(ActorContextKey)
	if actorRaw == nil {
		return nil, NewAppError(http.StatusUnauthorized, "認証情報が見つかりません", nil)
	}
	actor, ok := actorRaw.(*domain.Actor)
	if !ok {
		return nil, NewAppError(http.StatusUnauthorized, "認証情報が見つかりません", nil)
	}
	return actor, nil
}
