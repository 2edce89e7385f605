package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

type Defect struct {
	id          int64
	title       string
	description string
	priority    Priority
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	dueDate     *time.Time
	reporterID  int64
	assigneeID  *int64
	projectID   int64
}

// NewDefect は新規欠陥を生成します。reporterID は認証済み操作者から
// 必ず設定され、以後変更されません。
func NewDefect(ctx context.Context, title, description string, priority Priority, status Status, dueDate *time.Time, reporterID int64, assigneeID *int64, projectID int64) (*Defect, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority.IsZero() {
		priority = DefaultPriority
	}
	if status.IsZero() {
		status = DefaultStatus
	}
	now := ctxtime.Now(ctx)
	return &Defect{
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		createdAt:   now,
		updatedAt:   now,
		dueDate:     dueDate,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		projectID:   projectID,
	}, nil
}

func ReconstructDefect(id int64, title, description, priority, status string, createdAt, updatedAt time.Time, dueDate *time.Time, reporterID int64, assigneeID *int64, projectID int64) (*Defect, error) {
	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	s, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return &Defect{
		id:          id,
		title:       title,
		description: description,
		priority:    p,
		status:      s,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		dueDate:     dueDate,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		projectID:   projectID,
	}, nil
}

func (d *Defect) ID() int64 {
	return d.id
}

func (d *Defect) Title() string {
	return d.title
}

func (d *Defect) Description() string {
	return d.description
}

func (d *Defect) Priority() Priority {
	return d.priority
}

func (d *Defect) Status() Status {
	return d.status
}

func (d *Defect) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Defect) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Defect) DueDate() *time.Time {
	return d.dueDate
}

func (d *Defect) ReporterID() int64 {
	return d.reporterID
}

func (d *Defect) AssigneeID() *int64 {
	return d.assigneeID
}

func (d *Defect) ProjectID() int64 {
	return d.projectID
}

// DefectUpdate は部分更新の入力です。nil のフィールドは変更されません。
type DefectUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *time.Time
	AssigneeID  *int64
}

// ApplyUpdate はクライアントが指定したフィールドのみを上書きし、
// updatedAt を現在時刻に進めます。reporterID と projectID は変更できません。
func (d *Defect) ApplyUpdate(ctx context.Context, update DefectUpdate) error {
	if update.Title != nil {
		if *update.Title == "" {
			return ErrEmptyTitle
		}
		d.title = *update.Title
	}
	if update.Description != nil {
		d.description = *update.Description
	}
	if update.Priority != nil {
		d.priority = *update.Priority
	}
	if update.Status != nil {
		d.status = *update.Status
	}
	if update.DueDate != nil {
		d.dueDate = update.DueDate
	}
	if update.AssigneeID != nil {
		d.assigneeID = update.AssigneeID
	}
	d.updatedAt = ctxtime.Now(ctx)
	return nil
}
