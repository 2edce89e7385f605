//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"
)

// TokenProvider はベアラートークンの発行と検証を担当する外部協調者です。
// トークンの形式・署名・有効期限はこのインターフェースの背後に隠蔽されます。
type TokenProvider interface {
	Issue(ctx context.Context, subject string) (string, error)
	// Verify はトークンを検証し、subject（ユーザー名）を返します
	Verify(ctx context.Context, token string) (string, error)
}

// ObjectStorage は添付ファイル本体の保管先です
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentLength int64) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
}

// StorageErrorChecker はストレージ実装固有のエラーを分類します
type StorageErrorChecker interface {
	IsNotFound(err error) bool
}

// StorageKeyGenerator は添付ファイルのストレージキーを決定します。
// 同名ファイルの衝突はキー側で回避し、元のファイル名はメタデータに残します。
type StorageKeyGenerator interface {
	Generate(defectID int64, filename string) string
}
