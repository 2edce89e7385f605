//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_password_hasher.go -package=domain
package domain

// PasswordHasher はパスワードのハッシュ化と照合の能力です。
// 共有状態を持たず、利用する操作へ明示的に渡されます。
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
