package dto

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/defectrack/internal/domain"
)

var ErrInvalidQueryParameter = errors.New("invalid query parameter")

// ParseDefectFilter はクエリパラメータを絞り込み条件へ変換します。
// 日付は RFC3339 形式と YYYY-MM-DD 形式の両方を受け付けます。
func ParseDefectFilter(c echo.Context) (domain.DefectFilter, error) {
	var filter domain.DefectFilter

	projectID, err := queryInt64(c, "project_id")
	if err != nil {
		return domain.DefectFilter{}, err
	}
	filter.ProjectID = projectID

	assigneeID, err := queryInt64(c, "assignee_id")
	if err != nil {
		return domain.DefectFilter{}, err
	}
	filter.AssigneeID = assigneeID

	reporterID, err := queryInt64(c, "reporter_id")
	if err != nil {
		return domain.DefectFilter{}, err
	}
	filter.ReporterID = reporterID

	if raw := c.QueryParam("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return domain.DefectFilter{}, err
		}
		filter.Status = &status
	}

	if raw := c.QueryParam("priority"); raw != "" {
		priority, err := domain.ParsePriority(raw)
		if err != nil {
			return domain.DefectFilter{}, err
		}
		filter.Priority = &priority
	}

	for name, dst := range map[string]**time.Time{
		"created_start_date": &filter.CreatedStartDate,
		"created_end_date":   &filter.CreatedEndDate,
		"due_start_date":     &filter.DueStartDate,
		"due_end_date":       &filter.DueEndDate,
	} {
		parsed, err := queryTime(c, name)
		if err != nil {
			return domain.DefectFilter{}, err
		}
		*dst = parsed
	}

	if raw := c.QueryParam("search_query"); raw != "" {
		filter.SearchQuery = &raw
	}

	return filter, nil
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ParsePagination は skip/limit クエリパラメータを解釈します。
// limit は上限を超えないよう丸め込みます。
func ParsePagination(c echo.Context) (skip, limit int, err error) {
	skip = 0
	limit = defaultListLimit

	if raw := c.QueryParam("skip"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("%w: skip=%s", ErrInvalidQueryParameter, raw)
		}
		skip = parsed
	}
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 1 {
			return 0, 0, fmt.Errorf("%w: limit=%s", ErrInvalidQueryParameter, raw)
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit, nil
}

func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%s", ErrInvalidQueryParameter, name, raw)
	}
	return &parsed, nil
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%s", ErrInvalidQueryParameter, name, raw)
	}
	return &parsed, nil
}
