package usecase

import (
	"context"

	"review-assignment-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
	}
}

// GetStatistics возвращает обе сводки: назначения по пользователям и ревьюверы по PR.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) ([]*domain.UserAssignmentStat, []*domain.PRReviewerStat, error) {
	byUser, err := uc.statsRepo.CountAssignmentsByUser(ctx)
	if err != nil {
		return nil, nil, err
	}

	byPR, err := uc.statsRepo.CountReviewersByPR(ctx)
	if err != nil {
		return nil, nil, err
	}

	return byUser, byPR, nil
}
