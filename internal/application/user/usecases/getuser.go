package usecases

import (
	"context"

	"stayops/internal/application/user/dto"
	"stayops/internal/domain/user"
	"stayops/internal/shared/logger"
)

type GetUserUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

func NewGetUserUseCase(repo user.Repository, log logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		repo:   repo,
		logger: log.Named("usecase.get_user"),
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u), nil
}
