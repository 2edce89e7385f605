package dto

import (
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

type CreateProjectRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectRequestDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProjectResponseDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int64     `json:"owner_id"`
}

func NewProjectResponse(project *domain.Project) ProjectResponseDTO {
	return ProjectResponseDTO{
		ID:          project.ID(),
		Title:       project.Title(),
		Description: project.Description(),
		CreatedAt:   project.CreatedAt(),
		OwnerID:     project.OwnerID(),
	}
}

func NewProjectListResponse(projects []*domain.Project) []ProjectResponseDTO {
	responses := make([]ProjectResponseDTO, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, NewProjectResponse(project))
	}
	return responses
}
