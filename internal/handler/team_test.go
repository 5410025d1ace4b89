package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"review-assignment-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTeam_Created(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	created := &domain.Team{
		Name: "backend",
		Members: []*domain.User{
			{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: true},
			{ID: "u2", Username: "Bob", TeamName: "backend", IsActive: false},
		},
	}
	teamUC.On("CreateTeam", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(created, nil)

	rec := doJSON(t, e, http.MethodPost, "/team/add",
		`{"team_name":"backend","members":[{"user_id":"u1","username":"Alice","is_active":true},{"user_id":"u2","username":"Bob","is_active":false}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Team struct {
			TeamName string `json:"team_name"`
			Members  []struct {
				UserID   string `json:"user_id"`
				IsActive bool   `json:"is_active"`
			} `json:"members"`
		} `json:"team"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "backend", resp.Team.TeamName)
	require.Len(t, resp.Team.Members, 2)
	assert.False(t, resp.Team.Members[1].IsActive)
}

func TestAddTeam_AlreadyExists(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	teamUC.On("CreateTeam", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(nil, domain.ErrTeamAlreadyExists)

	rec := doJSON(t, e, http.MethodPost, "/team/add",
		`{"team_name":"backend","members":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TEAM_EXISTS", decodeError(t, rec).Error.Code)
}

func TestAddTeam_MissingName(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	rec := doJSON(t, e, http.MethodPost, "/team/add", `{"members":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	teamUC.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
}

func TestGetTeam_OK(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	team := &domain.Team{
		Name: "backend",
		Members: []*domain.User{
			{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: true},
		},
	}
	teamUC.On("GetTeam", mock.Anything, "backend").Return(team, nil)

	rec := doJSON(t, e, http.MethodGet, "/team/get?team_name=backend", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TeamName string `json:"team_name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "backend", resp.TeamName)
}

func TestGetTeam_NotFound(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	teamUC.On("GetTeam", mock.Anything, "ghosts").Return(nil, domain.ErrTeamNotFound)

	rec := doJSON(t, e, http.MethodGet, "/team/get?team_name=ghosts", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestDeactivateTeam_OK(t *testing.T) {
	teamUC := &TeamUseCaseMock{}
	e := newTestServer(&PRUseCaseMock{}, teamUC, &UserUseCaseMock{}, &StatsUseCaseMock{})

	result := &domain.TeamDeactivationResult{
		TeamName:           "backend",
		DeactivatedUsers:   2,
		ReassignedPRs:      1,
		DeactivatedUserIDs: []string{"u1", "u2"},
	}
	teamUC.On("DeactivateTeamUsers", mock.Anything, "backend").Return(result, nil)

	rec := doJSON(t, e, http.MethodPost, "/team/deactivate", `{"team_name":"backend"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		DeactivatedUsers int      `json:"deactivated_users"`
		ReassignedPRs    int      `json:"reassigned_prs"`
		UserIDs          []string `json:"deactivated_user_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.DeactivatedUsers)
	assert.Equal(t, 1, resp.ReassignedPRs)
	assert.Equal(t, []string{"u1", "u2"}, resp.UserIDs)
}
