package handler_test

import (
	"context"

	"review-assignment-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type PRUseCaseMock struct {
	mock.Mock
}

func (m *PRUseCaseMock) CreatePR(ctx context.Context, prID, prName, authorID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID, prName, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRUseCaseMock) MergePR(ctx context.Context, prID string) (*domain.PullRequest, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *PRUseCaseMock) ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	args := m.Called(ctx, prID, oldReviewerID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.PullRequest), args.String(1), args.Error(2)
}

type TeamUseCaseMock struct {
	mock.Mock
}

func (m *TeamUseCaseMock) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamUseCaseMock) GetTeam(ctx context.Context, teamName string) (*domain.Team, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamUseCaseMock) DeactivateTeamUsers(ctx context.Context, teamName string) (*domain.TeamDeactivationResult, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamDeactivationResult), args.Error(1)
}

type UserUseCaseMock struct {
	mock.Mock
}

func (m *UserUseCaseMock) SetUserActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	args := m.Called(ctx, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserUseCaseMock) GetUserReviewPRs(ctx context.Context, userID string) ([]*domain.PullRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequest), args.Error(1)
}

type StatsUseCaseMock struct {
	mock.Mock
}

func (m *StatsUseCaseMock) GetStatistics(ctx context.Context) ([]*domain.UserAssignmentStat, []*domain.PRReviewerStat, error) {
	args := m.Called(ctx)
	var byUser []*domain.UserAssignmentStat
	var byPR []*domain.PRReviewerStat
	if args.Get(0) != nil {
		byUser = args.Get(0).([]*domain.UserAssignmentStat)
	}
	if args.Get(1) != nil {
		byPR = args.Get(1).([]*domain.PRReviewerStat)
	}
	return byUser, byPR, args.Error(2)
}
