package validator

import (
	"context"
	"strings"
	"testing"

	"bakery/internal/domain/model"
	"bakery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in validator tests")
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	panic("not used in validator tests")
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func TestValidateRegister_RequiredFields(t *testing.T) {
	v := NewAuthValidator(new(UserRepoMock))

	assertErrContains(t, v.ValidateRegister(context.Background(), "", "password123"), "username and password required")
	assertErrContains(t, v.ValidateRegister(context.Background(), "asha", ""), "username and password required")
}

func TestValidateRegister_UsernameLength(t *testing.T) {
	v := NewAuthValidator(new(UserRepoMock))

	assertErrContains(t, v.ValidateRegister(context.Background(), "ab", "password123"), "invalid username")
	assertErrContains(t, v.ValidateRegister(context.Background(), strings.Repeat("a", 51), "password123"), "invalid username")
}

func TestValidateRegister_PasswordTooShort(t *testing.T) {
	v := NewAuthValidator(new(UserRepoMock))

	assertErrContains(t, v.ValidateRegister(context.Background(), "asha", "short"), "password too short")
}

func TestValidateRegister_DuplicateUsername(t *testing.T) {
	users := new(UserRepoMock)
	v := NewAuthValidator(users)

	users.On("FindByUsername", mock.Anything, "asha").Return(&model.User{ID: 1, Username: "asha"}, nil)

	assertErrContains(t, v.ValidateRegister(context.Background(), "asha", "password123"), "username already taken")
}

func TestValidateRegister_OK(t *testing.T) {
	users := new(UserRepoMock)
	v := NewAuthValidator(users)

	users.On("FindByUsername", mock.Anything, "asha").Return(nil, repository.ErrNotFound)

	assert.NoError(t, v.ValidateRegister(context.Background(), " asha ", "password123"))
}

func TestValidateLogin(t *testing.T) {
	v := NewAuthValidator(new(UserRepoMock))

	assertErrContains(t, v.ValidateLogin(context.Background(), " ", "x"), "username and password required")
	assert.NoError(t, v.ValidateLogin(context.Background(), "asha", "x"))
}
