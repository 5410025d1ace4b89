package handler

import (
	"net/http"

	"review-assignment-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы статистики назначений
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetStatistics возвращает сводку назначений по пользователям и по PR
func (h *StatsHandler) GetStatistics(c echo.Context) error {
	logEntry := h.logRequest(c, "get_statistics")
	logEntry.Info("Getting statistics")

	byUser, byPR, err := h.statsUseCase.GetStatistics(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get statistics")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	resp := StatisticsResponse{
		AssignmentsByUser: make([]UserAssignmentStatDTO, len(byUser)),
		ReviewersPerPR:    make([]PRReviewerStatDTO, len(byPR)),
	}
	for i, s := range byUser {
		resp.AssignmentsByUser[i] = UserAssignmentStatDTO{
			UserID:           s.UserID,
			AssignmentsCount: s.AssignmentsCount,
		}
	}
	for i, s := range byPR {
		resp.ReviewersPerPR[i] = PRReviewerStatDTO{
			PullRequestID:  s.PullRequestID,
			ReviewersCount: s.ReviewersCount,
		}
	}

	logEntry.Info("Statistics retrieved")
	return c.JSON(http.StatusOK, resp)
}
