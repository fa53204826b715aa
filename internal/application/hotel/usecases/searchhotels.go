package usecases

import (
	"context"

	"stayops/internal/application/hotel/dto"
	"stayops/internal/domain/hotel"
	"stayops/internal/shared/logger"
)

// SearchHotelsUseCase matches hotels by name, location, address or market.
// An empty query lists everything.
type SearchHotelsUseCase struct {
	repo   hotel.Repository
	logger logger.Interface
}

func NewSearchHotelsUseCase(repo hotel.Repository, log logger.Interface) *SearchHotelsUseCase {
	return &SearchHotelsUseCase{
		repo:   repo,
		logger: log.Named("usecase.search_hotels"),
	}
}

func (uc *SearchHotelsUseCase) Execute(ctx context.Context, query string, offset, limit int) ([]*dto.HotelResponse, int64, error) {
	hotels, total, err := uc.repo.Search(ctx, query, offset, limit)
	if err != nil {
		uc.logger.Errorw("failed to search hotels", "query", query, "error", err)
		return nil, 0, err
	}
	return dto.NewHotelResponses(hotels), total, nil
}
