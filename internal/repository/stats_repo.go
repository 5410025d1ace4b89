package repository

import (
	"context"
	"database/sql"
	"fmt"

	"review-assignment-service/internal/domain"
)

const (
	countAssignmentsByUserQuery = `
SELECT reviewer_id, COUNT(*) AS assignments_count
FROM pr_reviewers
GROUP BY reviewer_id
ORDER BY assignments_count DESC, reviewer_id;`

	countReviewersByPRQuery = `
SELECT pr.pull_request_id, COUNT(r.reviewer_id) AS reviewers_count
FROM pull_requests pr
LEFT JOIN pr_reviewers r ON r.pull_request_id = pr.pull_request_id
GROUP BY pr.pull_request_id
ORDER BY reviewers_count DESC, pr.pull_request_id;`
)

// StatsRepository реализует domain.StatsRepository поверх агрегирующих запросов.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &StatsRepository{db: db}
}

// CountAssignmentsByUser возвращает количество назначений на ревью по пользователям.
func (r *StatsRepository) CountAssignmentsByUser(ctx context.Context) ([]*domain.UserAssignmentStat, error) {
	rows, err := r.db.QueryContext(ctx, countAssignmentsByUserQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get user assignment stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.UserAssignmentStat, 0)
	for rows.Next() {
		var s domain.UserAssignmentStat
		if err := rows.Scan(&s.UserID, &s.AssignmentsCount); err != nil {
			return nil, fmt.Errorf("failed to scan user assignment stat: %w", err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user assignment stats: %w", err)
	}

	return stats, nil
}

// CountReviewersByPR возвращает количество назначенных ревьюверов по каждому PR.
func (r *StatsRepository) CountReviewersByPR(ctx context.Context) ([]*domain.PRReviewerStat, error) {
	rows, err := r.db.QueryContext(ctx, countReviewersByPRQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR reviewer stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.PRReviewerStat, 0)
	for rows.Next() {
		var s domain.PRReviewerStat
		if err := rows.Scan(&s.PullRequestID, &s.ReviewersCount); err != nil {
			return nil, fmt.Errorf("failed to scan PR reviewer stat: %w", err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PR reviewer stats: %w", err)
	}

	return stats, nil
}
