package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops/internal/application/user/dto"
	"stayops/internal/domain/user"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

func storedUser(t *testing.T) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(7, "agent@stayops.test", "hashed:secret123", "Test Agent", user.RoleAgent, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			assert.Equal(t, "agent@stayops.test", email)
			return storedUser(t), nil
		},
	}
	uc := NewLoginUseCase(repo, plainHasher{}, &mockTokenGenerator{}, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.LoginRequest{
		Email:    "agent@stayops.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-7", resp.Token)
	assert.Equal(t, uint(7), resp.User.ID)
	assert.Equal(t, user.RoleAgent, resp.User.Role)
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
			return storedUser(t), nil
		},
	}
	uc := NewLoginUseCase(repo, plainHasher{}, &mockTokenGenerator{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.LoginRequest{
		Email:    "agent@stayops.test",
		Password: "nope",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		getByEmailFunc: func(_ context.Context, _ string) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}
	uc := NewLoginUseCase(repo, plainHasher{}, &mockTokenGenerator{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.LoginRequest{
		Email:    "ghost@stayops.test",
		Password: "whatever",
	})
	require.Error(t, err)

	// Unknown email is indistinguishable from a wrong password.
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(_ context.Context, u *user.User) error {
			return u.SetID(2)
		},
	}
	uc := NewCreateUserUseCase(repo, plainHasher{}, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Email:    "New.Agent@StayOps.test",
		Password: "longenough",
		FullName: "New Agent",
		Role:     user.RoleAgent,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), resp.ID)
	assert.Equal(t, "new.agent@stayops.test", resp.Email)
}

func TestCreateUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, plainHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Email:    "agent@stayops.test",
		Password: "short",
		Role:     user.RoleAgent,
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		existsByEmailFunc: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}
	uc := NewCreateUserUseCase(repo, plainHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Email:    "agent@stayops.test",
		Password: "longenough",
		Role:     user.RoleAgent,
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}
