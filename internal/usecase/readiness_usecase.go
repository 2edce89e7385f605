package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrHealthCheckFailed はいずれかの依存先の疎通確認が失敗したことを示します
var ErrHealthCheckFailed = errors.New("health check failed")

// HealthCheckResult は依存先1つ分の疎通確認結果です
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase は登録されたすべての依存先の疎通を確認します
type ReadinessUseCase struct {
	checkers []HealthChecker
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers: checkers,
	}
}

// Execute は全依存先を確認し、1つでも失敗していればエラーを返します
func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails は全依存先を確認し、依存先ごとの結果を返します。
// 途中で失敗しても全件を確認してから返します
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, 0, len(uc.checkers))
	var failures []string

	for _, checker := range uc.checkers {
		err := checker.Check(ctx)
		results = append(results, HealthCheckResult{
			Name:    checker.Name(),
			Healthy: err == nil,
			Error:   err,
		})
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", checker.Name(), err))
		}
	}

	if len(failures) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failures, "; "))
	}

	return results, nil
}
