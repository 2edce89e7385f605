package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

type Comment struct {
	id        int64
	content   string
	createdAt time.Time
	authorID  int64
	defectID  int64
}

func NewComment(ctx context.Context, content string, authorID, defectID int64) (*Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Comment{
		content:   content,
		createdAt: ctxtime.Now(ctx),
		authorID:  authorID,
		defectID:  defectID,
	}, nil
}

func ReconstructComment(id int64, content string, createdAt time.Time, authorID, defectID int64) *Comment {
	return &Comment{
		id:        id,
		content:   content,
		createdAt: createdAt,
		authorID:  authorID,
		defectID:  defectID,
	}
}

func (c *Comment) ID() int64 {
	return c.id
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) AuthorID() int64 {
	return c.authorID
}

func (c *Comment) DefectID() int64 {
	return c.defectID
}

func (c *Comment) SetContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	c.content = content
	return nil
}
