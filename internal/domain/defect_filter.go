package domain

import "time"

// DefectFilter は欠陥一覧の絞り込み条件です。nil のフィールドは
// 条件に含めず、設定された条件はすべて AND で結合されます。
type DefectFilter struct {
	ProjectID        *int64
	Status           *Status
	Priority         *Priority
	AssigneeID       *int64
	ReporterID       *int64
	CreatedStartDate *time.Time
	CreatedEndDate   *time.Time
	DueStartDate     *time.Time
	DueEndDate       *time.Time
	// SearchQuery はタイトルと説明に対する部分一致検索です
	SearchQuery *string
}
