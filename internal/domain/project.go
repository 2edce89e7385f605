package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

type Project struct {
	id          int64
	title       string
	description string
	createdAt   time.Time
	ownerID     int64
}

func NewProject(ctx context.Context, title, description string, ownerID int64) (*Project, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Project{
		title:       title,
		description: description,
		createdAt:   ctxtime.Now(ctx),
		ownerID:     ownerID,
	}, nil
}

func ReconstructProject(id int64, title, description string, createdAt time.Time, ownerID int64) *Project {
	return &Project{
		id:          id,
		title:       title,
		description: description,
		createdAt:   createdAt,
		ownerID:     ownerID,
	}
}

func (p *Project) ID() int64 {
	return p.id
}

func (p *Project) Title() string {
	return p.title
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) OwnerID() int64 {
	return p.ownerID
}

// ApplyUpdate はクライアントが指定したフィールドのみを上書きします
func (p *Project) ApplyUpdate(title, description *string) error {
	if title != nil {
		if *title == "" {
			return ErrEmptyTitle
		}
		p.title = *title
	}
	if description != nil {
		p.description = *description
	}
	return nil
}
