package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bakery/internal/config"
	"bakery/internal/domain/model"
	"bakery/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限（元のセッションcookieと同じ24h）
const accessTokenTTL = 24 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, username string, password string) error
	ValidateLogin(ctx context.Context, username string, password string) error
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type AuthRegisterInput struct {
	Username string
	Password string
	Name     string
	Phone    string
	Address  string
}

type AuthLoginInput struct {
	Username string
	Password string
}

type AuthTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthLoginOutput struct {
	User  UserDTO      `json:"user"`
	Token AuthTokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repository.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repository.UserRepository, validator AuthValidator) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in AuthRegisterInput) (UserDTO, error) {
	// 入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Username, in.Password); err != nil {
		return UserDTO{}, err
	}

	// パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(pwHash),
		Role:         model.RoleCustomer,
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
	}

	// username重複はvalidatorで先に弾いているが、競合はuniqueIndexが拾う
	if err := u.users.Create(ctx, user); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusConflict, "username already taken")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, in AuthLoginInput) (AuthLoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Username, in.Password); err != nil {
		return AuthLoginOutput{}, err
	}

	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil || user == nil {
		// ユーザーの有無は区別して返さない
		return AuthLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	token, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return AuthLoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return AuthLoginOutput{
		User: toUserDTO(user),
		Token: AuthTokenDTO{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repository.ErrNotFound {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserDTO(user), nil
}

// HS256でaccess tokenを署名する。claimsはsub/role/iat/exp。
func (u *AuthUsecase) issueAccessToken(user *model.User) (string, int, error) {
	now := time.Now()
	expiresAt := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int(accessTokenTTL.Seconds()), nil
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Name:     u.Name,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}
