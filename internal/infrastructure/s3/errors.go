package s3

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/na2na-p/defectrack/internal/usecase"
)

var _ usecase.StorageErrorChecker = (*ErrorCheckerImpl)(nil)

// ErrorCheckerImpl はAWS SDK固有のエラー型を判別し、ストレージ実装の
// 詳細をユースケース層から隠蔽します。
type ErrorCheckerImpl struct{}

func NewErrorChecker() *ErrorCheckerImpl {
	return &ErrorCheckerImpl{}
}

// IsNotFound はオブジェクトが存在しないことを示すエラーかどうかを判定する
func (c *ErrorCheckerImpl) IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
