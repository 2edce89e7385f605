package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/handler/dto"
	"github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/usecase"
)

// mapUseCaseError はドメイン層・ユースケース層のエラーをHTTPステータスへ写像します。
// 対象が存在しない場合の404は認可エラーの403より常に優先されます（ユースケース側で保証）。
func mapUseCaseError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return middleware.NewAppError(http.StatusNotFound, "リソースが見つかりません", err)
	case errors.Is(err, usecase.ErrFileNotFound):
		return middleware.NewAppError(http.StatusNotFound, "ファイルがストレージ上に見つかりません", err)
	case errors.Is(err, usecase.ErrAuthorizationDenied):
		return middleware.NewAppError(http.StatusForbidden, "この操作を実行する権限がありません", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(http.StatusUnauthorized, "ユーザー名またはパスワードが正しくありません", err)
	case errors.Is(err, usecase.ErrAuthenticationFailed):
		return middleware.NewAppError(http.StatusUnauthorized, "認証情報を検証できませんでした", err)
	case errors.Is(err, usecase.ErrInactiveUser):
		return middleware.NewAppError(http.StatusUnauthorized, "このユーザーは無効化されています", err)
	case errors.Is(err, domain.ErrDuplicateUsername):
		return middleware.NewAppError(http.StatusBadRequest, "このユーザー名は既に使用されています", err)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return middleware.NewAppError(http.StatusBadRequest, "このメールアドレスは既に登録されています", err)
	case errors.Is(err, usecase.ErrProjectHasDefects):
		return middleware.NewAppError(http.StatusBadRequest, "欠陥が残っているプロジェクトは削除できません", err)
	case errors.Is(err, usecase.ErrInvalidExportFormat):
		return middleware.NewAppError(http.StatusBadRequest, "formatにはcsvまたはxlsxを指定してください", err)
	case isValidationError(err):
		return middleware.NewAppError(http.StatusUnprocessableEntity, err.Error(), err)
	default:
		return err
	}
}

func isValidationError(err error) bool {
	validationErrors := []error{
		domain.ErrEmptyTitle,
		domain.ErrEmptyContent,
		domain.ErrEmptyFilename,
		domain.ErrInvalidRole,
		domain.ErrInvalidPriority,
		domain.ErrInvalidStatus,
		domain.ErrInvalidUsername,
		domain.ErrInvalidEmail,
		dto.ErrInvalidQueryParameter,
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func errInvalidBody(err error) error {
	return middleware.NewAppError(http.StatusUnprocessableEntity, "リクエストボディのパースに失敗しました", err)
}

// paramID はパスパラメータを数値IDとして解釈します
func paramID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, middleware.NewAppError(http.StatusUnprocessableEntity, "パスパラメータ "+name+" が数値ではありません", err)
	}
	return id, nil
}
