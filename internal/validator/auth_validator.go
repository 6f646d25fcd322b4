package validator

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/repository"
	"bakery/internal/usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック
	if username == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "username and password required")
	}
	if len(username) < 3 || len(username) > 50 {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid username")
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	// username重複チェック（DBが必要）
	u, err := v.users.FindByUsername(ctx, username)
	if err == nil && u != nil {
		return usecase.NewHTTPError(http.StatusConflict, "username already taken")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "username and password required")
	}
	return nil
}
