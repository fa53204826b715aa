package usecases

import (
	"context"

	"stayops/internal/application/user/dto"
	"stayops/internal/domain/user"
	apperrors "stayops/internal/shared/errors"
	"stayops/internal/shared/logger"
)

// LoginUseCase verifies credentials and issues an access token.
type LoginUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	tokens TokenGenerator
	logger logger.Interface
}

func NewLoginUseCase(repo user.Repository, hasher PasswordHasher, tokens TokenGenerator, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: log.Named("usecase.login"),
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same answer whether the email is unknown or the password is
		// wrong, so the endpoint cannot be used to probe for accounts.
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Type == apperrors.ErrorTypeNotFound {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(req.Password, u.PasswordHash()); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(u),
	}, nil
}
