package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/na2na-p/defectrack/internal/usecase"
	"github.com/newmo-oss/ctxtime"
)

var (
	// ErrInvalidToken はトークンの検証に失敗した場合のエラーです
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken はトークンの有効期限が切れている場合のエラーです
	ErrExpiredToken = errors.New("token has expired")
)

var _ usecase.TokenProvider = (*JWTProvider)(nil)

// JWTProvider はHS256で署名したJWTを発行・検証します。
// subjectにユーザー名を載せ、有効期限以外のクレームは持ちません。
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (p *JWTProvider) Issue(ctx context.Context, subject string) (string, error) {
	now := ctxtime.Now(ctx)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗しました: %w", err)
	}
	return signed, nil
}

func (p *JWTProvider) Verify(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("予期しない署名アルゴリズムです: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(func() time.Time {
		return ctxtime.Now(ctx)
	}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: subjectが含まれていません", ErrInvalidToken)
	}
	return claims.Subject, nil
}
