package handler

import (
	"net/http"

	"review-assignment-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления командами
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger),
		teamUseCase: teamUseCase,
	}
}

// AddTeam обрабатывает создание новой команды с участниками
func (h *TeamHandler) AddTeam(c echo.Context) error {
	var req TeamDTO
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create team request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "create_team").WithField("team_name", req.TeamName)
	logEntry.Info("Creating team")

	team := &domain.Team{Name: req.TeamName}
	for _, member := range req.Members {
		team.Members = append(team.Members, &domain.User{
			ID:       member.UserID,
			Username: member.Username,
			TeamName: req.TeamName,
			IsActive: member.IsActive,
		})
	}

	created, err := h.teamUseCase.CreateTeam(c.Request().Context(), team)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithField("members_count", len(created.Members)).Info("Team created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"team": toTeamDTO(created),
	})
}

// GetTeam обрабатывает получение информации о команде по названию
func (h *TeamHandler) GetTeam(c echo.Context) error {
	teamName := c.QueryParam("team_name")

	logEntry := h.logRequest(c, "get_team").WithField("team_name", teamName)
	logEntry.Info("Getting team")

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamName)
	if err != nil {
		logEntry.WithError(err).Warn("Team not found")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithField("members_count", len(team.Members)).Info("Team retrieved successfully")
	return c.JSON(http.StatusOK, toTeamDTO(team))
}

// DeactivateTeam обрабатывает массовую деактивацию пользователей команды
func (h *TeamHandler) DeactivateTeam(c echo.Context) error {
	var req struct {
		TeamName string `json:"team_name" validate:"required"`
	}
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind deactivate team request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "deactivate_team").WithField("team_name", req.TeamName)
	logEntry.Info("Deactivating team users")

	result, err := h.teamUseCase.DeactivateTeamUsers(c.Request().Context(), req.TeamName)
	if err != nil {
		logEntry.WithError(err).Error("Failed to deactivate team users")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithFields(logrus.Fields{
		"deactivated_users":    result.DeactivatedUsers,
		"reassigned_prs":       result.ReassignedPRs,
		"failed_reassignments": result.FailedReassignments,
	}).Info("Team users deactivated successfully")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"team_name":            result.TeamName,
		"deactivated_users":    result.DeactivatedUsers,
		"reassigned_prs":       result.ReassignedPRs,
		"failed_reassignments": result.FailedReassignments,
		"deactivated_user_ids": result.DeactivatedUserIDs,
	})
}
