package handler

import (
	"errors"
	"net/http"

	"review-assignment-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в DTO внешнего API

func toTeamDTO(team *domain.Team) TeamDTO {
	members := make([]TeamMemberDTO, len(team.Members))
	for i, member := range team.Members {
		members[i] = TeamMemberDTO{
			UserID:   member.ID,
			Username: member.Username,
			IsActive: member.IsActive,
		}
	}
	return TeamDTO{
		TeamName: team.Name,
		Members:  members,
	}
}

func toUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		UserID:   user.ID,
		Username: user.Username,
		TeamName: user.TeamName,
		IsActive: user.IsActive,
	}
}

func toPullRequestDTO(pr *domain.PullRequest) PullRequestDTO {
	return PullRequestDTO{
		PullRequestID:     pr.ID,
		PullRequestName:   pr.Name,
		AuthorID:          pr.AuthorID,
		Status:            pr.Status,
		AssignedReviewers: pr.AssignedReviewers,
		CreatedAt:         pr.CreatedAt,
		MergedAt:          pr.MergedAt,
	}
}

func toPullRequestShortDTOs(prs []*domain.PullRequest) []PullRequestShortDTO {
	result := make([]PullRequestShortDTO, len(prs))
	for i, pr := range prs {
		result[i] = PullRequestShortDTO{
			PullRequestID:   pr.ID,
			PullRequestName: pr.Name,
			AuthorID:        pr.AuthorID,
			Status:          pr.Status,
		}
	}
	return result
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

// validationErrorResponse — ответ на невалидный запрос. Код NOT_FOUND при статусе 400
// унаследован от исходного контракта и сохранен для совместимости.
func validationErrorResponse(message string) domain.ErrorResponse {
	return toErrorResponse("NOT_FOUND", message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Bad Request (400)
	case errors.Is(err, domain.ErrTeamAlreadyExists),
		errors.Is(err, domain.ErrPRAlreadyExists):
		return http.StatusBadRequest

	// Conflict (409)
	case errors.Is(err, domain.ErrPRAlreadyMerged),
		errors.Is(err, domain.ErrReviewerNotAssigned),
		errors.Is(err, domain.ErrNoReviewerCandidate),
		errors.Is(err, domain.ErrNoActiveUsersInTeam),
		errors.Is(err, domain.ErrPartialReassignment):
		return http.StatusConflict

	// Not Found (404)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrPRNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrAuthorInactive):
		return http.StatusNotFound

	// Валидация (400)
	case errors.Is(err, domain.ErrInvalidPRID),
		errors.Is(err, domain.ErrInvalidPRName),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidTeamName):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
