package domain_test

import (
	"errors"
	"testing"

	"github.com/na2na-p/defectrack/internal/domain"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "正常系: 有効なメールアドレス",
			input:   "alice@example.com",
			wantErr: nil,
		},
		{
			name:    "異常系: 空文字の場合、ErrInvalidEmailが返る",
			input:   "",
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "異常系: アットマークがない場合、ErrInvalidEmailが返る",
			input:   "alice.example.com",
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "異常系: 表示名付きの形式は受け付けない",
			input:   "Alice <alice@example.com>",
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewEmail(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewEmail() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("want no error, but got %v", err)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %v, want %v", got.String(), tt.input)
			}
		})
	}
}
