//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_health_checker.go -package=usecase
package usecase

import (
	"context"
)

// HealthChecker は依存先コンポーネント単位の疎通確認を表します。
// Name はReadinessレスポンスのdetailsに表示される識別子です
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
