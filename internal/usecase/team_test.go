package usecase_test

import (
	"context"
	"testing"

	"review-assignment-service/internal/domain"
	"review-assignment-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamUseCase_CreateTeam_Success(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, &UserRepositoryMock{}, &PRRepositoryMock{})

	team := &domain.Team{
		Name: "backend",
		Members: []*domain.User{
			{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: true},
			{ID: "u2", Username: "Bob", TeamName: "backend", IsActive: true},
		},
	}

	teamRepo.On("Create", ctx, team).Return(nil)
	teamRepo.On("GetByName", ctx, "backend").Return(team, nil)

	created, err := uc.CreateTeam(ctx, team)

	require.NoError(t, err)
	assert.Equal(t, "backend", created.Name)
	assert.Len(t, created.Members, 2)
	teamRepo.AssertExpectations(t)
}

func TestTeamUseCase_CreateTeam_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, &UserRepositoryMock{}, &PRRepositoryMock{})

	team := &domain.Team{Name: "backend"}
	teamRepo.On("Create", ctx, team).Return(domain.ErrTeamAlreadyExists)

	created, err := uc.CreateTeam(ctx, team)

	assert.ErrorIs(t, err, domain.ErrTeamAlreadyExists)
	assert.Nil(t, created)
}

func TestTeamUseCase_CreateTeam_EmptyName(t *testing.T) {
	uc := usecase.NewTeamUseCase(&TeamRepositoryMock{}, &UserRepositoryMock{}, &PRRepositoryMock{})

	created, err := uc.CreateTeam(context.Background(), &domain.Team{Name: ""})

	assert.ErrorIs(t, err, domain.ErrInvalidTeamName)
	assert.Nil(t, created)
}

func TestTeamUseCase_GetTeam_NotFound(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, &UserRepositoryMock{}, &PRRepositoryMock{})

	teamRepo.On("GetByName", ctx, "ghosts").Return(nil, domain.ErrTeamNotFound)

	team, err := uc.GetTeam(ctx, "ghosts")

	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	assert.Nil(t, team)
}

func TestTeamUseCase_DeactivateTeamUsers_NoActiveUsers(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, &UserRepositoryMock{}, &PRRepositoryMock{})

	teamRepo.On("ExistsTeam", ctx, "backend").Return(true, nil)
	teamRepo.On("GetActiveUsersFromTeam", ctx, "backend").Return([]*domain.User{}, nil)

	result, err := uc.DeactivateTeamUsers(ctx, "backend")

	assert.ErrorIs(t, err, domain.ErrNoActiveUsersInTeam)
	assert.Nil(t, result)
}

func TestTeamUseCase_DeactivateTeamUsers_ReassignsOpenPRs(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	userRepo := &UserRepositoryMock{}
	prRepo := &PRRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, userRepo, prRepo)

	active := []*domain.User{
		{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: true},
	}
	replacement := []*domain.User{
		{ID: "f1", Username: "Fred", TeamName: "frontend", IsActive: true},
	}

	teamRepo.On("ExistsTeam", ctx, "backend").Return(true, nil)
	teamRepo.On("GetActiveUsersFromTeam", ctx, "backend").Return(active, nil)
	teamRepo.On("GetOpenPRsWithTeamReviewers", ctx, "backend").Return([]string{"pr-1"}, nil)
	userRepo.On("UpdateActiveStatus", ctx, "u1", false).Return(&domain.User{ID: "u1", IsActive: false}, nil)
	teamRepo.On("GetPRReviewersFromTeam", ctx, "pr-1", "backend").Return([]string{"u1"}, nil)
	teamRepo.On("GetAllTeams", ctx).Return([]string{"backend", "frontend"}, nil)
	teamRepo.On("GetActiveUsersFromTeam", ctx, "frontend").Return(replacement, nil)
	prRepo.On("ReassignReviewer", ctx, "pr-1", "u1", "f1").Return(nil)

	result, err := uc.DeactivateTeamUsers(ctx, "backend")

	require.NoError(t, err)
	assert.Equal(t, 1, result.DeactivatedUsers)
	assert.Equal(t, 1, result.ReassignedPRs)
	assert.Zero(t, result.FailedReassignments)
	assert.Equal(t, []string{"u1"}, result.DeactivatedUserIDs)
	prRepo.AssertExpectations(t)
}

func TestTeamUseCase_DeactivateTeamUsers_PartialFailure(t *testing.T) {
	ctx := context.Background()
	teamRepo := &TeamRepositoryMock{}
	userRepo := &UserRepositoryMock{}
	prRepo := &PRRepositoryMock{}
	uc := usecase.NewTeamUseCase(teamRepo, userRepo, prRepo)

	active := []*domain.User{
		{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: true},
	}

	teamRepo.On("ExistsTeam", ctx, "backend").Return(true, nil)
	teamRepo.On("GetActiveUsersFromTeam", ctx, "backend").Return(active, nil)
	teamRepo.On("GetOpenPRsWithTeamReviewers", ctx, "backend").Return([]string{"pr-1"}, nil)
	userRepo.On("UpdateActiveStatus", ctx, "u1", false).Return(&domain.User{ID: "u1", IsActive: false}, nil)
	teamRepo.On("GetPRReviewersFromTeam", ctx, "pr-1", "backend").Return([]string{"u1"}, nil)
	// Замену искать негде: других команд нет
	teamRepo.On("GetAllTeams", ctx).Return([]string{"backend"}, nil)

	result, err := uc.DeactivateTeamUsers(ctx, "backend")

	assert.ErrorIs(t, err, domain.ErrPartialReassignment)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.FailedReassignments)
	assert.Zero(t, result.ReassignedPRs)
}
