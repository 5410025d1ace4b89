package domain

import (
	"context"
	"time"
)

// Статусы пул-реквеста. MERGED — терминальный, переходов из него нет.
const (
	PRStatusOpen   = "OPEN"
	PRStatusMerged = "MERGED"
)

// PullRequest представляет сущность пул-реквеста в системе.
type PullRequest struct {
	ID                string
	Name              string
	AuthorID          string
	Status            string
	AssignedReviewers []string
	CreatedAt         time.Time
	MergedAt          *time.Time
}

// PRRepository определяет контракт для работы с хранилищем пул-реквестов.
type PRRepository interface {
	CreateWithReviewers(ctx context.Context, pr *PullRequest, reviewerIDs []string) error
	GetByID(ctx context.Context, prID string) (*PullRequest, error)
	Merge(ctx context.Context, prID string) (*PullRequest, error)
	ReassignReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error
	GetUserAssignedPRs(ctx context.Context, userID string) ([]*PullRequest, error)
	ExistsPr(ctx context.Context, prID string) (bool, error)
}
