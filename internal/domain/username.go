package domain

import (
	"errors"
	"unicode/utf8"
)

var ErrInvalidUsername = errors.New("username must be 1 to 64 characters")

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	length := utf8.RuneCountInString(s)
	if length < 1 || length > 64 {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) String() string {
	return u.value
}

func (u Username) IsZero() bool {
	return u.value == ""
}
