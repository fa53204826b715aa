package usecases

import (
	"context"

	"stayops/internal/application/user/dto"
	"stayops/internal/domain/user"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

const minPasswordLength = 8

// CreateUserUseCase registers a new back-office user. Only admins reach it;
// the route enforces that.
type CreateUserUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewCreateUserUseCase(repo user.Repository, hasher PasswordHasher, log logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		repo:   repo,
		hasher: hasher,
		logger: log.Named("usecase.create_user"),
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(req.Email, hash, req.FullName, req.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	return dto.NewUserResponse(u), nil
}
