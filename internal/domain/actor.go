package domain

// Actor はリクエストを実行する認証済みの主体です。
// トークン解決後のスナップショットであり、認可判定の入力にのみ使われます。
type Actor struct {
	ID       int64
	Username string
	Role     Role
	Active   bool
}
