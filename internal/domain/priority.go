package domain

import "errors"

var ErrInvalidPriority = errors.New("invalid priority")

type Priority struct {
	value string
}

var (
	PriorityLow      = Priority{value: "low"}
	PriorityMedium   = Priority{value: "medium"}
	PriorityHigh     = Priority{value: "high"}
	PriorityCritical = Priority{value: "critical"}
)

var DefaultPriority = PriorityLow

func ParsePriority(s string) (Priority, error) {
	switch s {
	case PriorityLow.value:
		return PriorityLow, nil
	case PriorityMedium.value:
		return PriorityMedium, nil
	case PriorityHigh.value:
		return PriorityHigh, nil
	case PriorityCritical.value:
		return PriorityCritical, nil
	default:
		return Priority{}, ErrInvalidPriority
	}
}

func (p Priority) String() string {
	return p.value
}

func (p Priority) IsZero() bool {
	return p.value == ""
}
