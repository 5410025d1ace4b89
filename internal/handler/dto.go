package handler

import "time"

// DTO внешнего API. Имена полей фиксированы контрактом, менять нельзя.

type TeamMemberDTO struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type TeamDTO struct {
	TeamName string          `json:"team_name" validate:"required"`
	Members  []TeamMemberDTO `json:"members" validate:"dive"`
}

type UserDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TeamName string `json:"team_name"`
	IsActive bool   `json:"is_active"`
}

type SetIsActiveRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

type CreatePullRequestRequest struct {
	PullRequestID   string `json:"pull_request_id" validate:"required"`
	PullRequestName string `json:"pull_request_name" validate:"required"`
	AuthorID        string `json:"author_id" validate:"required"`
}

type MergePullRequestRequest struct {
	PullRequestID string `json:"pull_request_id" validate:"required"`
}

type ReassignRequest struct {
	PullRequestID string `json:"pull_request_id" validate:"required"`
	OldUserID     string `json:"old_user_id" validate:"required"`
}

type PullRequestDTO struct {
	PullRequestID     string     `json:"pull_request_id"`
	PullRequestName   string     `json:"pull_request_name"`
	AuthorID          string     `json:"author_id"`
	Status            string     `json:"status"`
	AssignedReviewers []string   `json:"assigned_reviewers"`
	CreatedAt         time.Time  `json:"createdAt"`
	MergedAt          *time.Time `json:"mergedAt"`
}

type PullRequestShortDTO struct {
	PullRequestID   string `json:"pull_request_id"`
	PullRequestName string `json:"pull_request_name"`
	AuthorID        string `json:"author_id"`
	Status          string `json:"status"`
}

type GetReviewResponse struct {
	UserID       string                `json:"user_id"`
	PullRequests []PullRequestShortDTO `json:"pull_requests"`
}

type UserAssignmentStatDTO struct {
	UserID           string `json:"user_id"`
	AssignmentsCount int64  `json:"assignments_count"`
}

type PRReviewerStatDTO struct {
	PullRequestID  string `json:"pull_request_id"`
	ReviewersCount int64  `json:"reviewers_count"`
}

type StatisticsResponse struct {
	AssignmentsByUser []UserAssignmentStatDTO `json:"assignments_by_user"`
	ReviewersPerPR    []PRReviewerStatDTO     `json:"reviewers_per_pr"`
}
