package dto

import (
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

type CommentRequestDTO struct {
	Content string `json:"content"`
}

type CommentResponseDTO struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  int64     `json:"author_id"`
	DefectID  int64     `json:"defect_id"`
}

func NewCommentResponse(comment *domain.Comment) CommentResponseDTO {
	return CommentResponseDTO{
		ID:        comment.ID(),
		Content:   comment.Content(),
		CreatedAt: comment.CreatedAt(),
		AuthorID:  comment.AuthorID(),
		DefectID:  comment.DefectID(),
	}
}

func NewCommentListResponse(comments []*domain.Comment) []CommentResponseDTO {
	responses := make([]CommentResponseDTO, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, NewCommentResponse(comment))
	}
	return responses
}
