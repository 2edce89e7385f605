package domain

import "errors"

var (
	// ErrNotFound は対象のリソースが存在しない場合のエラーです
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername はユーザー名が既に使用されている場合のエラーです
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateEmail はメールアドレスが既に登録されている場合のエラーです
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrEmptyTitle はタイトルが空の場合のエラーです
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent はコメント本文が空の場合のエラーです
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyFilename はファイル名が空の場合のエラーです
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrEmptyStorageKey はストレージキーが空の場合のエラーです
	ErrEmptyStorageKey = errors.New("storage key cannot be empty")
)
