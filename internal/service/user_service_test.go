package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/domain"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

func newUserServiceForTest() (*UserService, *userRepoFake) {
	repo := newUserRepoFake()
	return NewUserService(repo, bcrypt.MinCost), repo
}

func TestCreateUser_AssignsIDAndHashesPassword(t *testing.T) {
	svc, _ := newUserServiceForTest()

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:       "alice@example.com",
		Password:    "s3cret",
		Role:        "employee",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "s3cret"))
}

func TestCreateUser_ForcesActiveStatus(t *testing.T) {
	svc, repo := newUserServiceForTest()

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "bob@example.com",
		Password: "pw",
		Role:     "employee",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusActive, stored.Status)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "dup@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "dup@example.com", Password: "other"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestCreateUser_EmailComparisonIsCaseSensitive(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "case@example.com", Password: "pw"})
	require.NoError(t, err)

	// store-native comparison, no normalization
	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "Case@example.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestGetUserByEmail_AbsenceIsNotAnError(t *testing.T) {
	svc, _ := newUserServiceForTest()

	user, err := svc.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetAllUsers(t *testing.T) {
	svc, _ := newUserServiceForTest()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := svc.CreateUser(ctx, CreateUserInput{Email: email, Password: "pw"})
		require.NoError(t, err)
	}

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestChangePassword_UnknownEmail(t *testing.T) {
	svc, _ := newUserServiceForTest()

	ok, err := svc.ChangePassword(context.Background(), "nobody@example.com", "old", "new")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestChangePassword_WrongCurrentPasswordLeavesHashUnchanged(t *testing.T) {
	svc, repo := newUserServiceForTest()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "right"})
	require.NoError(t, err)
	before := user.PasswordHash

	ok, err := svc.ChangePassword(ctx, "a@x.com", "wrong", "new")
	assert.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, before, stored.PasswordHash)
}

func TestChangePassword_Success(t *testing.T) {
	svc, repo := newUserServiceForTest()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "old"})
	require.NoError(t, err)

	ok, err := svc.ChangePassword(ctx, "a@x.com", "old", "new")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(stored.PasswordHash, "new"))
	assert.Error(t, auth.ComparePassword(stored.PasswordHash, "old"))
}
