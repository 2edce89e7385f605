package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/handler"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
	mock_usecase "github.com/na2na-p/defectrack/tests/usecase"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	type fields struct {
		setupMock func(ctrl *gomock.Controller) usecase.AuthUseCase
	}
	tests := []struct {
		name            string
		fields          fields
		form            url.Values
		wantStatusCode  int
		wantAccessToken string
	}{
		{
			name: "正常系: 資格情報が正しい場合、ベアラートークンが返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) usecase.AuthUseCase {
					mockUC := mock_usecase.NewMockAuthUseCase(ctrl)
					mockUC.EXPECT().Login(gomock.Any(), "alice", "s3cret").Return("signed-token", nil)
					return mockUC
				},
			},
			form: url.Values{
				"username": {"alice"},
				"password": {"s3cret"},
			},
			wantStatusCode:  http.StatusOK,
			wantAccessToken: "signed-token",
		},
		{
			name: "異常系: 資格情報が誤っている場合、401が返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) usecase.AuthUseCase {
					mockUC := mock_usecase.NewMockAuthUseCase(ctrl)
					mockUC.EXPECT().Login(gomock.Any(), "alice", "wrong").
						Return("", usecase.ErrInvalidCredentials)
					return mockUC
				},
			},
			form: url.Values{
				"username": {"alice"},
				"password": {"wrong"},
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "異常系: usernameが空の場合、422が返る",
			fields: fields{
				setupMock: func(ctrl *gomock.Controller) usecase.AuthUseCase {
					return mock_usecase.NewMockAuthUseCase(ctrl)
				},
			},
			form: url.Values{
				"password": {"s3cret"},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := handler.NewAuthHandler(tt.fields.setupMock(ctrl))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Login(c)

			if tt.wantStatusCode != http.StatusOK {
				var appErr *middleware.AppError
				if !errors.As(err, &appErr) {
					t.Fatalf("error type = %T, want *AppError", err)
				}
				if appErr.StatusCode != tt.wantStatusCode {
					t.Errorf("status code = %v, want %v", appErr.StatusCode, tt.wantStatusCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status code = %v, want %v", rec.Code, http.StatusOK)
			}

			var response map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response["access_token"] != tt.wantAccessToken {
				t.Errorf("access_token = %q, want %q", response["access_token"], tt.wantAccessToken)
			}
			if response["token_type"] != "bearer" {
				t.Errorf("token_type = %q, want %q", response["token_type"], "bearer")
			}
		})
	}
}
