package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// Attachment は欠陥に添付されたファイルのメタデータです。
// ファイル名とストレージキーはサーバー側で決定され、クライアントの
// メタデータは対象の欠陥ID以外信用しません。
type Attachment struct {
	id         int64
	filename   string
	storageKey string
	uploadedAt time.Time
	uploaderID int64
	defectID   int64
}

func NewAttachment(ctx context.Context, filename, storageKey string, uploaderID, defectID int64) (*Attachment, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	if storageKey == "" {
		return nil, ErrEmptyStorageKey
	}
	return &Attachment{
		filename:   filename,
		storageKey: storageKey,
		uploadedAt: ctxtime.Now(ctx),
		uploaderID: uploaderID,
		defectID:   defectID,
	}, nil
}

func ReconstructAttachment(id int64, filename, storageKey string, uploadedAt time.Time, uploaderID, defectID int64) *Attachment {
	return &Attachment{
		id:         id,
		filename:   filename,
		storageKey: storageKey,
		uploadedAt: uploadedAt,
		uploaderID: uploaderID,
		defectID:   defectID,
	}
}

func (a *Attachment) ID() int64 {
	return a.id
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StorageKey() string {
	return a.storageKey
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) UploaderID() int64 {
	return a.uploaderID
}

func (a *Attachment) DefectID() int64 {
	return a.defectID
}
