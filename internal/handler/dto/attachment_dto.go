package dto

import (
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

// AttachmentResponseDTO はストレージキーを含めません。
// キーはサーバー内部の配置情報であり、クライアントには公開しない前提です。
type AttachmentResponseDTO struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
	UploaderID int64     `json:"uploader_id"`
	DefectID   int64     `json:"defect_id"`
}

func NewAttachmentResponse(attachment *domain.Attachment) AttachmentResponseDTO {
	return AttachmentResponseDTO{
		ID:         attachment.ID(),
		Filename:   attachment.Filename(),
		UploadedAt: attachment.UploadedAt(),
		UploaderID: attachment.UploaderID(),
		DefectID:   attachment.DefectID(),
	}
}

func NewAttachmentListResponse(attachments []*domain.Attachment) []AttachmentResponseDTO {
	responses := make([]AttachmentResponseDTO, 0, len(attachments))
	for _, attachment := range attachments {
		responses = append(responses, NewAttachmentResponse(attachment))
	}
	return responses
}
