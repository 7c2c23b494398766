package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/onboardhq/onboard-go/internal/api/middleware"
	"github.com/onboardhq/onboard-go/internal/domain/user"
	"github.com/onboardhq/onboard-go/internal/repository"
	"github.com/onboardhq/onboard-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptrString(s string) *string { return &s }

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.CreateUserInput{
		Username: "alice",
		Password: "123456",
		Email:    ptrString("alice@test.com"),
		FullName: ptrString("Alice"),
	}

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.UserRoleEmployee, u.Role)
		return nil
	})

	err := svc.RegisterUser(input)
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{UID: 1}, nil)

	input := user.CreateUserInput{Username: "admin", Password: "123456"}
	err := svc.RegisterUser(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegisterUser_ExplicitRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("hradmin").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.UserRoleHR, u.Role)
		return nil
	})

	input := user.CreateUserInput{Username: "hradmin", Password: "123456", Role: ptrString("hr")}
	err := svc.RegisterUser(input)
	assert.NoError(t, err)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	password := "123456"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	usr := user.User{UID: 1, Username: "bob", Password: string(hashed), Role: user.UserRoleEmployee}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	password := "123456"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	usr := user.User{UID: 1, Username: "bob", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	u, token, err := svc.LoginUser("bob", "wrong")
	assert.Error(t, err)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("notexist").Return(user.User{}, errors.New("not found"))

	u, token, err := svc.LoginUser("notexist", "123")
	assert.Error(t, err)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_SuccessChangePassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	oldPass := "oldpass"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(oldPass), bcrypt.DefaultCost)
	existing := user.User{UID: 1, Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	newPass := "newpass"
	input := user.UpdateUserInput{OldPassword: &oldPass, Password: &newPass}
	_, err := svc.UpdateUser(1, input)
	assert.NoError(t, err)
}

func TestUpdateUser_MissingOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1}, nil)

	newPass := "newpass"
	input := user.UpdateUserInput{Password: &newPass}
	_, err := svc.UpdateUser(1, input)
	assert.Equal(t, ErrMissingOldPassword, err)
}

func TestUpdateUser_IncorrectOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Password: string(hashed)}, nil)

	input := user.UpdateUserInput{OldPassword: ptrString("wrongpass"), Password: ptrString("newpass")}
	_, err := svc.UpdateUser(1, input)
	assert.Equal(t, ErrIncorrectPassword, err)
}

// --------------------- RemoveUser ---------------------
func TestRemoveUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1}, nil)
	mockUser.EXPECT().DeleteUser(uint(1)).Return(nil)

	err := svc.RemoveUser(1)
	assert.NoError(t, err)
}

func TestRemoveUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

	err := svc.RemoveUser(9)
	assert.Equal(t, ErrUserNotFound, err)
}
