package domain

import "errors"

var ErrInvalidStatus = errors.New("invalid status")

// Status は欠陥の作業状態です。状態遷移グラフは持たず、
// 更新権限を持つ操作者は任意の状態へ変更できます。
type Status struct {
	value string
}

var (
	StatusNew        = Status{value: "new"}
	StatusInProgress = Status{value: "in_progress"}
	StatusOnReview   = Status{value: "on_review"}
	StatusClosed     = Status{value: "closed"}
	StatusCancelled  = Status{value: "cancelled"}
)

var DefaultStatus = StatusNew

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusNew.value:
		return StatusNew, nil
	case StatusInProgress.value:
		return StatusInProgress, nil
	case StatusOnReview.value:
		return StatusOnReview, nil
	case StatusClosed.value:
		return StatusClosed, nil
	case StatusCancelled.value:
		return StatusCancelled, nil
	default:
		return Status{}, ErrInvalidStatus
	}
}

func (s Status) String() string {
	return s.value
}

func (s Status) IsZero() bool {
	return s.value == ""
}
