//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	if err := SetupE2EEnvironment(); err != nil {
		t.Fatalf("E2E環境のセットアップに失敗: %v", err)
	}

	username := UniqueName("auth-user")
	email := username + "@example.com"
	password := "e2e-password"

	t.Run("正常系: 登録したユーザーでログインし、自身の情報を取得できる", func(t *testing.T) {
		RegisterUser(t, username, email, password)
		token := Login(t, username, password)

		resp, body := DoRequest(t, http.MethodGet, "/users/me/", token, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status code = %v, want %v (body=%s)", resp.StatusCode, http.StatusOK, body)
		}

		var me map[string]interface{}
		if err := json.Unmarshal([]byte(body), &me); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if me["username"] != username {
			t.Errorf("username = %v, want %v", me["username"], username)
		}
		// セルフ登録は要求ロールに関わらず最小権限で作成される
		if me["role"] != "observer" {
			t.Errorf("role = %v, want %v", me["role"], "observer")
		}
	})

	t.Run("異常系: パスワードが誤っている場合、401とWWW-Authenticateヘッダが返る", func(t *testing.T) {
		form := url.Values{
			"username": {username},
			"password": {"wrong-password"},
		}
		resp, body := DoRequest(t, http.MethodPost, "/token", "", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status code = %v, want %v (body=%s)", resp.StatusCode, http.StatusUnauthorized, body)
		}
		if got := resp.Header.Get("WWW-Authenticate"); got != "Bearer" {
			t.Errorf("WWW-Authenticate = %q, want %q", got, "Bearer")
		}
		if !strings.Contains(body, "detail") {
			t.Errorf("body = %s, want detail field", body)
		}
	})

	t.Run("異常系: トークンなしで保護されたエンドポイントへアクセスすると401が返る", func(t *testing.T) {
		resp, _ := DoRequest(t, http.MethodGet, "/defects/", "", "", nil)

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status code = %v, want %v", resp.StatusCode, http.StatusUnauthorized)
		}
	})
}
