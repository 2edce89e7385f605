package dto

import (
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/usecase"
)

type CreateDefectRequestDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
	ProjectID   int64      `json:"project_id,omitempty"`
}

// ToInput は省略された優先度とステータスに既定値を充てて入力へ変換します
func (d *CreateDefectRequestDTO) ToInput() (usecase.CreateDefectInput, error) {
	priority := domain.PriorityLow
	if d.Priority != "" {
		p, err := domain.ParsePriority(d.Priority)
		if err != nil {
			return usecase.CreateDefectInput{}, err
		}
		priority = p
	}

	status := domain.StatusNew
	if d.Status != "" {
		s, err := domain.ParseStatus(d.Status)
		if err != nil {
			return usecase.CreateDefectInput{}, err
		}
		status = s
	}

	return usecase.CreateDefectInput{
		Title:       d.Title,
		Description: d.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     d.DueDate,
		AssigneeID:  d.AssigneeID,
		ProjectID:   d.ProjectID,
	}, nil
}

type UpdateDefectRequestDTO struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
}

func (d *UpdateDefectRequestDTO) ToUpdate() (domain.DefectUpdate, error) {
	update := domain.DefectUpdate{
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		AssigneeID:  d.AssigneeID,
	}

	if d.Priority != nil {
		p, err := domain.ParsePriority(*d.Priority)
		if err != nil {
			return domain.DefectUpdate{}, err
		}
		update.Priority = &p
	}
	if d.Status != nil {
		s, err := domain.ParseStatus(*d.Status)
		if err != nil {
			return domain.DefectUpdate{}, err
		}
		update.Status = &s
	}

	return update, nil
}

type DefectResponseDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DueDate     *time.Time `json:"due_date"`
	ReporterID  int64      `json:"reporter_id"`
	AssigneeID  *int64     `json:"assignee_id"`
	ProjectID   int64      `json:"project_id"`
}

func NewDefectResponse(defect *domain.Defect) DefectResponseDTO {
	return DefectResponseDTO{
		ID:          defect.ID(),
		Title:       defect.Title(),
		Description: defect.Description(),
		Priority:    defect.Priority().String(),
		Status:      defect.Status().String(),
		CreatedAt:   defect.CreatedAt(),
		UpdatedAt:   defect.UpdatedAt(),
		DueDate:     defect.DueDate(),
		ReporterID:  defect.ReporterID(),
		AssigneeID:  defect.AssigneeID(),
		ProjectID:   defect.ProjectID(),
	}
}

func NewDefectListResponse(defects []*domain.Defect) []DefectResponseDTO {
	responses := make([]DefectResponseDTO, 0, len(defects))
	for _, defect := range defects {
		responses = append(responses, NewDefectResponse(defect))
	}
	return responses
}
