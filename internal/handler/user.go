package handler

import (
	"net/http"

	"review-assignment-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// SetIsActive обрабатывает изменение флага активности пользователя
func (h *UserHandler) SetIsActive(c echo.Context) error {
	var req SetIsActiveRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind set is_active request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "set_is_active").WithFields(logrus.Fields{
		"user_id":   req.UserID,
		"is_active": *req.IsActive,
	})
	logEntry.Info("Setting user is_active flag")

	user, err := h.userUseCase.SetUserActive(c.Request().Context(), req.UserID, *req.IsActive)
	if err != nil {
		logEntry.WithError(err).Error("Failed to set user is_active flag")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.Info("User is_active flag updated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toUserDTO(user),
	})
}

// GetReview обрабатывает получение PR, где пользователь назначен ревьювером
func (h *UserHandler) GetReview(c echo.Context) error {
	userID := c.QueryParam("user_id")

	logEntry := h.logRequest(c, "get_review").WithField("user_id", userID)
	logEntry.Info("Getting user review PRs")

	prs, err := h.userUseCase.GetUserReviewPRs(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user review PRs")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithField("prs_count", len(prs)).Info("User review PRs retrieved")
	return c.JSON(http.StatusOK, GetReviewResponse{
		UserID:       userID,
		PullRequests: toPullRequestShortDTOs(prs),
	})
}
