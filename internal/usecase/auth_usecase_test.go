package usecase

import (
	"context"
	"testing"

	"bakery/internal/config"
	"bakery/internal/domain/model"
	"bakery/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type AuthValidatorMock struct{ mock.Mock }

func (m *AuthValidatorMock) ValidateRegister(ctx context.Context, username string, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *AuthValidatorMock) ValidateLogin(ctx context.Context, username string, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func testConfig() config.Config {
	return config.Config{JWTSecret: "test_secret"}
}

func TestAuthUsecase_Register_HashesPassword(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	v.On("ValidateRegister", mock.Anything, "asha", "password123").Return(nil)

	var saved *model.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved, _ = args.Get(1).(*model.User)
		}).
		Return(nil)

	out, err := uc.Register(context.Background(), AuthRegisterInput{
		Username: "asha",
		Password: "password123",
		Name:     "Asha",
	})
	assert.NoError(t, err)
	assert.Equal(t, "customer", out.Role)

	// 平文では保存しない
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("password123")))
}

func TestAuthUsecase_Register_ValidatorErrorStopsCreate(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	v.On("ValidateRegister", mock.Anything, "a", "short").Return(NewHTTPError(400, "password too short"))

	_, err := uc.Register(context.Background(), AuthRegisterInput{Username: "a", Password: "short"})
	assertErrContains(t, err, "password too short")
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_DuplicateUsernameIsConflict(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	v.On("ValidateRegister", mock.Anything, "asha", "password123").Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := uc.Register(context.Background(), AuthRegisterInput{Username: "asha", Password: "password123"})
	assertErrContains(t, err, "username already taken")
}

func TestAuthUsecase_Login_IssuesSignedToken(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	v.On("ValidateLogin", mock.Anything, "asha", "password123").Return(nil)
	users.On("FindByUsername", mock.Anything, "asha").Return(&model.User{
		ID:           7,
		Username:     "asha",
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
	}, nil)

	out, err := uc.Login(context.Background(), AuthLoginInput{Username: "asha", Password: "password123"})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, int(accessTokenTTL.Seconds()), out.Token.ExpiresIn)

	// 発行したtokenが同じsecretで検証できてsub/roleが入っている
	parsed, err := jwt.Parse(out.Token.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "customer", claims["role"])
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	v.On("ValidateLogin", mock.Anything, "asha", "wrong").Return(nil)
	users.On("FindByUsername", mock.Anything, "asha").Return(&model.User{
		ID:           7,
		PasswordHash: string(hash),
	}, nil)

	_, err := uc.Login(context.Background(), AuthLoginInput{Username: "asha", Password: "wrong"})
	assertErrContains(t, err, "unauthorized")
}

func TestAuthUsecase_Login_UnknownUserSameError(t *testing.T) {
	users := new(UserRepoMock)
	v := new(AuthValidatorMock)
	uc := NewAuthUsecase(testConfig(), users, v)

	v.On("ValidateLogin", mock.Anything, "ghost", "password123").Return(nil)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := uc.Login(context.Background(), AuthLoginInput{Username: "ghost", Password: "password123"})
	// ユーザーの有無で文言を変えない
	assertErrContains(t, err, "unauthorized")
}

func TestAuthUsecase_Me(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewAuthUsecase(testConfig(), users, new(AuthValidatorMock))

	users.On("FindByID", mock.Anything, int64(7)).Return(&model.User{ID: 7, Username: "asha"}, nil)

	out, err := uc.Me(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "asha", out.Username)

	_, err = uc.Me(context.Background(), 0)
	assertErrContains(t, err, "unauthorized")
}
