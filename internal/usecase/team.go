package usecase

import (
	"context"

	"review-assignment-service/internal/domain"
)

// TeamUseCase реализует бизнес-логику для работы с командами.
type TeamUseCase struct {
	teamRepo domain.TeamRepository
	userRepo domain.UserRepository
	prRepo   domain.PRRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teamRepo domain.TeamRepository, userRepo domain.UserRepository, prRepo domain.PRRepository) domain.TeamUseCase {
	return &TeamUseCase{
		teamRepo: teamRepo,
		userRepo: userRepo,
		prRepo:   prRepo,
	}
}

// CreateTeam создает команду; участники создаются или переводятся в нее.
func (uc *TeamUseCase) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if team.Name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	// Перечитываем сохраненное состояние
	return uc.teamRepo.GetByName(ctx, team.Name)
}

// GetTeam возвращает команду по названию.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamName string) (*domain.Team, error) {
	if teamName == "" {
		return nil, domain.ErrInvalidTeamName
	}

	return uc.teamRepo.GetByName(ctx, teamName)
}

// DeactivateTeamUsers массово деактивирует участников команды и переназначает
// их слоты в открытых PR на активных пользователей других команд.
func (uc *TeamUseCase) DeactivateTeamUsers(ctx context.Context, teamName string) (*domain.TeamDeactivationResult, error) {
	if teamName == "" {
		return nil, domain.ErrInvalidTeamName
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	activeUsers, err := uc.teamRepo.GetActiveUsersFromTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if len(activeUsers) == 0 {
		return nil, domain.ErrNoActiveUsersInTeam
	}

	// Открытые PR с ревьюверами из команды собираем до деактивации
	openPRs, err := uc.teamRepo.GetOpenPRsWithTeamReviewers(ctx, teamName)
	if err != nil {
		return nil, err
	}

	result := &domain.TeamDeactivationResult{
		TeamName:           teamName,
		DeactivatedUserIDs: make([]string, 0, len(activeUsers)),
	}

	for _, user := range activeUsers {
		if _, err := uc.userRepo.UpdateActiveStatus(ctx, user.ID, false); err != nil {
			return nil, err
		}
		result.DeactivatedUserIDs = append(result.DeactivatedUserIDs, user.ID)
	}
	result.DeactivatedUsers = len(activeUsers)

	for _, prID := range openPRs {
		if uc.reassignTeamSlots(ctx, prID, teamName) {
			result.ReassignedPRs++
		} else {
			result.FailedReassignments++
		}
	}

	if result.FailedReassignments > 0 {
		return result, domain.ErrPartialReassignment
	}

	return result, nil
}

// reassignTeamSlots переназначает в одном PR все слоты ревьюверов деактивированной команды.
func (uc *TeamUseCase) reassignTeamSlots(ctx context.Context, prID, teamName string) bool {
	teamReviewers, err := uc.teamRepo.GetPRReviewersFromTeam(ctx, prID, teamName)
	if err != nil {
		return false
	}

	replacements, err := uc.findReplacementsOutsideTeam(ctx, teamName)
	if err != nil || len(replacements) < len(teamReviewers) {
		return false
	}

	for i, oldReviewerID := range teamReviewers {
		if err := uc.prRepo.ReassignReviewer(ctx, prID, oldReviewerID, replacements[i].ID); err != nil {
			return false
		}
	}

	return true
}

// findReplacementsOutsideTeam собирает активных пользователей всех остальных команд.
func (uc *TeamUseCase) findReplacementsOutsideTeam(ctx context.Context, excludeTeam string) ([]*domain.User, error) {
	teams, err := uc.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}

	var replacements []*domain.User
	for _, name := range teams {
		if name == excludeTeam {
			continue
		}

		activeUsers, err := uc.teamRepo.GetActiveUsersFromTeam(ctx, name)
		if err != nil {
			continue
		}
		replacements = append(replacements, activeUsers...)

		// Кандидатов больше десяти не набираем
		if len(replacements) >= 10 {
			break
		}
	}

	return replacements, nil
}
