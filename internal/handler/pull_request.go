package handler

import (
	"net/http"

	"review-assignment-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PRHandler обрабатывает HTTP-запросы, связанные с пул-реквестами
type PRHandler struct {
	*BaseHandler
	prUseCase domain.PRUseCase
}

// NewPRHandler создает новый экземпляр PRHandler
func NewPRHandler(prUseCase domain.PRUseCase, logger *logrus.Logger) *PRHandler {
	return &PRHandler{
		BaseHandler: NewBaseHandler(logger),
		prUseCase:   prUseCase,
	}
}

// CreatePullRequest обрабатывает создание нового пул-реквеста
func (h *PRHandler) CreatePullRequest(c echo.Context) error {
	var req CreatePullRequestRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create PR request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "create_pr").WithFields(logrus.Fields{
		"pr_id":   req.PullRequestID,
		"pr_name": req.PullRequestName,
		"author":  req.AuthorID,
	})
	logEntry.Info("Creating pull request")

	pr, err := h.prUseCase.CreatePR(c.Request().Context(), req.PullRequestID, req.PullRequestName, req.AuthorID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create PR")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithField("reviewers_count", len(pr.AssignedReviewers)).Info("PR created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"pr": toPullRequestDTO(pr),
	})
}

// MergePullRequest обрабатывает мерж существующего пул-реквеста
func (h *PRHandler) MergePullRequest(c echo.Context) error {
	var req MergePullRequestRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind merge PR request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "merge_pr").WithField("pr_id", req.PullRequestID)
	logEntry.Info("Merging pull request")

	pr, err := h.prUseCase.MergePR(c.Request().Context(), req.PullRequestID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to merge PR")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.Info("PR merged successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pr": toPullRequestDTO(pr),
	})
}

// ReassignReviewer обрабатывает переназначение ревьювера пул-реквеста
func (h *PRHandler) ReassignReviewer(c echo.Context) error {
	var req ReassignRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind reassign reviewer request")
		return c.JSON(http.StatusBadRequest, validationErrorResponse(err.Error()))
	}

	logEntry := h.logRequest(c, "reassign_reviewer").WithFields(logrus.Fields{
		"pr_id":        req.PullRequestID,
		"old_reviewer": req.OldUserID,
	})
	logEntry.Info("Reassigning reviewer")

	pr, newReviewerID, err := h.prUseCase.ReassignReviewer(c.Request().Context(), req.PullRequestID, req.OldUserID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to reassign reviewer")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), domain.ErrorResponse{Error: httpErr})
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
	}

	logEntry.WithField("new_reviewer", newReviewerID).Info("Reviewer reassigned successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pr":          toPullRequestDTO(pr),
		"replaced_by": newReviewerID,
	})
}
