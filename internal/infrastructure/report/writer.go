package report

import (
	"strconv"
	"time"

	"github.com/na2na-p/defectrack/internal/domain"
)

// reportHeader はエクスポートの列構成。CSVとXLSXで共通です。
var reportHeader = []string{
	"ID",
	"Title",
	"Description",
	"Priority",
	"Status",
	"Created At",
	"Updated At",
	"Due Date",
	"Reporter ID",
	"Assignee ID",
	"Project ID",
}

func defectRecord(defect *domain.Defect) []string {
	dueDate := ""
	if d := defect.DueDate(); d != nil {
		dueDate = d.Format(time.RFC3339)
	}
	assigneeID := ""
	if id := defect.AssigneeID(); id != nil {
		assigneeID = strconv.FormatInt(*id, 10)
	}

	return []string{
		strconv.FormatInt(defect.ID(), 10),
		defect.Title(),
		defect.Description(),
		defect.Priority().String(),
		defect.Status().String(),
		defect.CreatedAt().Format(time.RFC3339),
		defect.UpdatedAt().Format(time.RFC3339),
		dueDate,
		strconv.FormatInt(defect.ReporterID(), 10),
		assigneeID,
		strconv.FormatInt(defect.ProjectID(), 10),
	}
}
