package domain

import "errors"

// Доменные ошибки (бизнес-логика)
var (
	// Validation errors
	ErrInvalidPRID     = errors.New("invalid pull request id")
	ErrInvalidPRName   = errors.New("invalid pull request name")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidTeamName = errors.New("invalid team name")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// PR errors
	ErrPRNotFound      = errors.New("pull request not found")
	ErrPRAlreadyExists = errors.New("pull request already exists")
	ErrPRAlreadyMerged = errors.New("pull request already merged")
	ErrAuthorNotFound  = errors.New("pull request author not found")
	ErrAuthorInactive  = errors.New("pull request author is not active")

	// Reviewer errors
	ErrReviewerNotAssigned = errors.New("reviewer is not assigned to this PR")
	ErrNoReviewerCandidate = errors.New("no active reviewer candidate available")

	// Team deactivation errors
	ErrNoActiveUsersInTeam = errors.New("no active users in team")
	ErrPartialReassignment = errors.New("partial reassignment completed with failures")
)

// HTTPError — код и сообщение ошибки в формате внешнего API.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг доменных ошибок в коды внешнего API.
// Неактивный автор и несуществующие сущности намеренно отдаются одним кодом NOT_FOUND.
var ErrorMapping = map[error]HTTPError{
	ErrTeamAlreadyExists:   {Code: "TEAM_EXISTS", Message: "team_name already exists"},
	ErrPRAlreadyExists:     {Code: "PR_EXISTS", Message: "PR id already exists"},
	ErrPRAlreadyMerged:     {Code: "PR_MERGED", Message: "cannot reassign on merged PR"},
	ErrReviewerNotAssigned: {Code: "NOT_ASSIGNED", Message: "reviewer is not assigned to this PR"},
	ErrNoReviewerCandidate: {Code: "NO_CANDIDATE", Message: "no active replacement candidate in team"},
	ErrUserNotFound:        {Code: "NOT_FOUND", Message: "user not found"},
	ErrTeamNotFound:        {Code: "NOT_FOUND", Message: "team not found"},
	ErrPRNotFound:          {Code: "NOT_FOUND", Message: "pull request not found"},
	ErrAuthorNotFound:      {Code: "NOT_FOUND", Message: "author not found"},
	ErrAuthorInactive:      {Code: "NOT_FOUND", Message: "author is not active"},
	ErrNoActiveUsersInTeam: {Code: "NO_ACTIVE_USERS", Message: "no active users in team to deactivate"},
	ErrPartialReassignment: {Code: "PARTIAL_REASSIGNMENT", Message: "partial reassignment completed with some failures"},

	// Ошибки валидации отдаются с кодом NOT_FOUND при статусе 400 — так делает
	// исходный контракт, клиенты на это завязаны.
	ErrInvalidPRID:     {Code: "NOT_FOUND", Message: "pull_request_id must not be blank"},
	ErrInvalidPRName:   {Code: "NOT_FOUND", Message: "pull_request_name must not be blank"},
	ErrInvalidUserID:   {Code: "NOT_FOUND", Message: "user_id must not be blank"},
	ErrInvalidTeamName: {Code: "NOT_FOUND", Message: "team_name must not be blank"},
}

// ToHTTPError преобразует доменную ошибку в ошибку внешнего API.
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
