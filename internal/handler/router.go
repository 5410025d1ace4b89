package handler

import (
	"net/http"

	"review-assignment-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// APIHandler объединяет обработчики всех ресурсов внешнего API.
type APIHandler struct {
	*TeamHandler
	*UserHandler
	*PRHandler
	*StatsHandler
}

func NewAPIHandler(
	teamUseCase domain.TeamUseCase,
	userUseCase domain.UserUseCase,
	prUseCase domain.PRUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) *APIHandler {
	return &APIHandler{
		TeamHandler:  NewTeamHandler(teamUseCase, logger),
		UserHandler:  NewUserHandler(userUseCase, logger),
		PRHandler:    NewPRHandler(prUseCase, logger),
		StatsHandler: NewStatsHandler(statsUseCase, logger),
	}
}

// RegisterRoutes привязывает обработчики к маршрутам внешнего контракта.
func RegisterRoutes(e *echo.Echo, h *APIHandler) {
	e.POST("/team/add", h.AddTeam)
	e.GET("/team/get", h.GetTeam)
	e.POST("/team/deactivate", h.DeactivateTeam)

	e.POST("/users/setIsActive", h.SetIsActive)
	e.GET("/users/getReview", h.GetReview)

	e.POST("/pullRequest/create", h.CreatePullRequest)
	e.POST("/pullRequest/merge", h.MergePullRequest)
	e.POST("/pullRequest/reassign", h.ReassignReviewer)

	e.GET("/statistics", h.GetStatistics)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
