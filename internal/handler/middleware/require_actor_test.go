package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	mock_middleware "github.com/na2na-p/defectrack/tests/handler/middleware"
	"go.uber.org/mock/gomock"
)

func TestRequireActor(t *testing.T) {
	actor := &domain.Actor{
		ID:       1,
		Username: "alice",
		Role:     domain.RoleEngineer,
		Active:   true,
	}

	type fields struct {
		setupMock func(ctrl *gomock.Controller) middleware.AuthUseCaseInterface
	}
	tests := []struct {
		name           string
		fields         fields
		authHeader     string
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name: "正常系: 有効なベアラートークンの場合、操作者がコンテキストへ格納される",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) middleware.AuthUseCaseInterface {
					mockUC := mock_middleware.NewMockAuthUseCaseInterface(ctrl)
					mockUC.EXPECT().Authenticate(gomock.Any(), "valid-token").Return(actor, nil)
					return mockUC
				},
			},
			authHeader:     "Bearer valid-token",
			wantNextCalled: true,
		},
		{
			name: "異常系: Authorizationヘッダがない場合、401が返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) middleware.AuthUseCaseInterface {
					return mock_middleware.NewMockAuthUseCaseInterface(ctrl)
				},
			},
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "異常系: Bearer形式でない場合、401が返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) middleware.AuthUseCaseInterface {
					return mock_middleware.NewMockAuthUseCaseInterface(ctrl)
				},
			},
			authHeader:     "Basic dXNlcjpwYXNz",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "異常系: トークンの検証に失敗した場合、401が返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) middleware.AuthUseCaseInterface {
					mockUC := mock_middleware.NewMockAuthUseCaseInterface(ctrl)
					mockUC.EXPECT().Authenticate(gomock.Any(), "expired-token").
						Return(nil, errors.New("token is expired"))
					return mockUC
				},
			},
			authHeader:     "Bearer expired-token",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/defects/", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				return nil
			}

			err := middleware.RequireActor(tt.fields.setupMock(ctrl))(next)(c)

			if nextCalled != tt.wantNextCalled {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNextCalled)
			}

			if tt.wantNextCalled {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got, actorErr := middleware.ActorFrom(c)
				if actorErr != nil {
					t.Fatalf("unexpected error: %v", actorErr)
				}
				if got.ID != actor.ID || got.Username != actor.Username {
					t.Errorf("actor = %+v, want %+v", got, actor)
				}
				return
			}

			var appErr *middleware.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error type = %T, want *AppError", err)
			}
			if appErr.StatusCode != tt.wantStatusCode {
				t.Errorf("status code = %v, want %v", appErr.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestActorFrom(t *testing.T) {
	t.Run("異常系: 操作者が格納されていない場合、401が返る", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/defects/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_, err := middleware.ActorFrom(c)

		var appErr *middleware.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("error type = %T, want *AppError", err)
		}
		if appErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("status code = %v, want %v", appErr.StatusCode, http.StatusUnauthorized)
		}
	})
}
