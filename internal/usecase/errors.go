package usecase

import "errors"

var (
	// ErrInvalidCredentials はユーザー名またはパスワードが一致しない場合のエラーです
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrAuthenticationFailed はトークンの検証に失敗した場合のエラーです
	ErrAuthenticationFailed = errors.New("could not validate credentials")

	// ErrInactiveUser は無効化されたユーザーによる操作のエラーです
	ErrInactiveUser = errors.New("inactive user")

	// ErrAuthorizationDenied は権限不足による拒否を表すエラーです
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrProjectHasDefects は欠陥が残っているプロジェクトの削除を拒否するエラーです
	ErrProjectHasDefects = errors.New("project still has defects")

	// ErrInvalidExportFormat は未対応のエクスポート形式のエラーです
	ErrInvalidExportFormat = errors.New("invalid format. choose 'csv' or 'xlsx'")

	// ErrFileNotFound はストレージ上にファイル本体が存在しない場合のエラーです
	ErrFileNotFound = errors.New("file not found on storage")
)
