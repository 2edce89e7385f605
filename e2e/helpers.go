//go:build e2e

// Package e2e はE2Eテストで使用するヘルパー関数を提供します
package e2e

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

var (
	// setupOnce はE2E環境セットアップを一度だけ実行するためのsync.Once
	setupOnce sync.Once
	setupErr  error
)

// TestMain はE2Eテストパッケージ全体の初期化を行います
func TestMain(m *testing.M) {
	if err := SetupE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// SetupE2EEnvironment はE2Eテスト環境をセットアップします。
// sync.Onceにより、複数回呼び出されても実際のセットアップは一度だけ実行されます
func SetupE2EEnvironment() error {
	setupOnce.Do(func() {
		setupErr = WaitForService(GetBaseEndpoint()+"/healthz", 60*time.Second)
	})
	return setupErr
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はE2Eテスト対象のベースエンドポイントを返します。
// 環境変数 E2E_TEST_ENDPOINT が設定されている場合はその値を使用します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

// OpenTestDatabase はテスト用のデータベース接続を開きます。
// ロール昇格などAPIだけでは準備できない前提条件の投入に使用します
func OpenTestDatabase() (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DATABASE_HOST", "localhost"),
		getEnvOrDefault("DATABASE_PORT", "5432"),
		getEnvOrDefault("DATABASE_USER", "defectrack"),
		getEnvOrDefault("DATABASE_PASSWORD", "defectrack_dev_password"),
		getEnvOrDefault("DATABASE_DBNAME", "defectrack"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗しました: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}
	return db, nil
}

// PromoteUserRole は指定ユーザーのロールをデータベース上で直接変更します。
// 最初の管理者はAPI経由では作れないため、テストの前提条件として使用します
func PromoteUserRole(username, role string) error {
	db, err := OpenTestDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	result, err := db.Exec(`UPDATE users SET role = $1 WHERE username = $2`, role, username)
	if err != nil {
		return fmt.Errorf("ユーザー %s のロール変更に失敗しました: %w", username, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("ユーザー %s が見つかりません", username)
	}
	return nil
}

// WaitForService は指定されたURLのサービスが利用可能になるまで待機します
func WaitForService(serviceURL string, timeout time.Duration) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	deadline := time.Now().Add(timeout)

	checkService := func() bool {
		resp, err := client.Get(serviceURL)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				return true
			}
		}
		return false
	}

	if checkService() {
		return nil
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("サービスの起動を待機中にタイムアウトしました: %s", serviceURL)
		}

		<-ticker.C
		if checkService() {
			return nil
		}
	}
}

// RegisterUser はセルフ登録APIでユーザーを作成します。
// 既に存在する場合（400）は成功として扱い、再実行可能にします
func RegisterUser(t *testing.T, username, email, password string) {
	t.Helper()

	body := fmt.Sprintf(`{"username": %q, "email": %q, "password": %q}`, username, email, password)
	resp, respBody := DoRequest(t, http.MethodPost, "/register/", "", "application/json", strings.NewReader(body))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("ユーザー登録に失敗しました: status=%d body=%s", resp.StatusCode, respBody)
	}
}

// Login はトークン発行APIでベアラートークンを取得します
func Login(t *testing.T, username, password string) string {
	t.Helper()

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	resp, respBody := DoRequest(t, http.MethodPost, "/token", "", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ログインに失敗しました: status=%d body=%s", resp.StatusCode, respBody)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal([]byte(respBody), &tokenResp); err != nil {
		t.Fatalf("トークンレスポンスのパースに失敗しました: %v", err)
	}
	if tokenResp.AccessToken == "" {
		t.Fatal("access_tokenが空です")
	}
	return tokenResp.AccessToken
}

// DoRequest はE2E対象サーバーへHTTPリクエストを送信し、レスポンスとボディを返します。
// レスポンスボディはクローズ済みの文字列としても返すため、アサーションに直接使えます
func DoRequest(t *testing.T, method, path, token, contentType string, body io.Reader) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, GetBaseEndpoint()+path, body)
	if err != nil {
		t.Fatalf("リクエストの作成に失敗しました: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("リクエストの送信に失敗しました: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("レスポンスボディの読み込みに失敗しました: %v", err)
	}

	return resp, string(respBody)
}

// UniqueName はテスト間で衝突しない名前を生成します
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
