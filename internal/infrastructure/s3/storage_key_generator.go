package s3

import (
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/na2na-p/defectrack/internal/usecase"
)

var _ usecase.StorageKeyGenerator = (*StorageKeyGeneratorImpl)(nil)

// StorageKeyGeneratorImpl は添付ファイルのストレージキーを生成します。
// 形式: attachments/{defect_id}/{uuid}/{filename}
// UUIDを挟むことで同名ファイルの衝突を避け、元のファイル名を
// キーの末尾に残します。
type StorageKeyGeneratorImpl struct{}

func NewStorageKeyGenerator() *StorageKeyGeneratorImpl {
	return &StorageKeyGeneratorImpl{}
}

func (g *StorageKeyGeneratorImpl) Generate(defectID int64, filename string) string {
	// クライアント由来のファイル名からパス区切りを取り除く
	name := path.Base(filename)
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("attachments/%d/%s/%s", defectID, uuid.NewString(), name)
}
