package domain

import "context"

// UserAssignmentStat — количество назначений на ревью у пользователя.
type UserAssignmentStat struct {
	UserID           string
	AssignmentsCount int64
}

// PRReviewerStat — количество назначенных ревьюверов у пул-реквеста.
type PRReviewerStat struct {
	PullRequestID  string
	ReviewersCount int64
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	CountAssignmentsByUser(ctx context.Context) ([]*UserAssignmentStat, error)
	CountReviewersByPR(ctx context.Context) ([]*PRReviewerStat, error)
}
